// Package repair reconciles the catalog's recorded image URLs against the
// folders actually present under the media root.
//
// A plant is flagged when any of its recorded URLs references a folder
// outside the available set. Flagged plants are reassigned wholesale to one
// of the available folders, round-robin, and their URL list rebuilt from
// that folder's contents. The assignment is an arbitrary remap, not a
// content-aware match: it exists to keep the catalog non-broken after bulk
// media changes, not to guarantee which plant gets which images.
//
// The engine is split into BuildPlan (pure computation, safe to run any
// time) and ApplyPlan (persists, gated on explicit confirmation), mirroring
// the dry-run contract of the repair command.
package repair
