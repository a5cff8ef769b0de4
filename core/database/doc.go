// Package database handles the MySQL connection for the catalog store.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration: DSN
// construction with encoded credentials, pool limits, and a ping with timeout
// so a dead database fails fast at startup instead of on the first query.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
