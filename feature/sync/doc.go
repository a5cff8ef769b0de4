// Package sync implements the bidirectional merge between the canonical
// catalog and offline clients.
//
// Pull flattens the catalog to a single-language projection: one record per
// plant with the projection-language common name (scientific name when no
// translation exists), the first image URL, and raw snapshots of the
// auxiliary collections. Push merges a client payload back in: the client
// is the ID authority for every collection, categories are resolved by
// exact name and never auto-created, and only the projection-language
// translation is ever written. Items are merged independently; a bad item
// is skipped and reported, never fatal for the batch.
package sync
