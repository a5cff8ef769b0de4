// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures and valid values for server settings,
// such as the bundled language codes used by the seeder and the sync projection.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, and the default language
// used when flattening plants for the sync pull payload.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the sync feature to resolve the projection language.
package server
