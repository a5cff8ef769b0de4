// Package media resolves the folder-per-plant filesystem layout into
// public media URLs.
//
// The layout is storage/app/public/plants/<slug>/images/* for images and
// .../<slug>/audio/<slug>_<langcode>_<unixtime>.<ext> for per-language
// audio. The resolver derives, for a plant folder, the ordered image URL
// list and the language-to-audio-URL map. Everything it produces is a
// derived view of the disk; it becomes authoritative only once the repair
// engine or the seeder writes it back into the catalog.
//
// # Slugification
//
// Slugify is the canonical rule turning a scientific name into its folder
// key. Reimplementations elsewhere must match it exactly, including the
// collapsing of repeated separators.
//
// # Determinism
//
// All listings are sorted lexicographically so repair plans are
// reproducible; OS directory order is never part of the contract.
package media
