// Package config provides configuration management for the verdex service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, default language)
//   - Database: MySQL connection details
//   - Media: plant media root, public URL prefix, scan timeout
//   - Storage: S3/MinIO credentials and bucket settings for backups
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Media.Root)
package config
