// Package backup archives the catalog and the media tree to object
// storage: a timestamped JSON snapshot of the full catalog plus a copy of
// every file under the media root.
package backup
