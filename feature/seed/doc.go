// Package seed loads the bundled plant dataset into the catalog: the
// language set, the category taxonomy, and a starter set of plants with
// translations, media-derived image URLs and per-language audio URLs.
// Seeding is idempotent and safe to re-run against a populated database.
package seed
