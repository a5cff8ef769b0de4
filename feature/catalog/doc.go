// Package catalog implements the canonical store for plants, categories,
// translations and languages.
//
// It is the leaf dependency of the reconciliation core: the media resolver
// derives state from disk, the repair engine and the sync merge decide what
// to write, and everything they write lands here.
//
// # Invariants
//
//   - scientific_name is globally unique (exact, case-sensitive match key)
//   - at most one translation per (plant_id, language_code)
//   - plant_category_id is NULL or references an existing category
//
// # Transactions
//
// Writes touching a plant plus its translations run inside a single
// transaction; on failure the whole plant rolls back while earlier plants
// of the same batch stay committed. The store carries no optimistic lock;
// see NewStore for the documented gap.
package catalog
