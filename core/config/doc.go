// Package config provides configuration management for Armory.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the 'default' struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Database: optional MySQL or SQLite connection for sessions
//   - Catalog: item catalog source (builtin, file, storage)
//   - Session: session persistence switch
//
// Nested keys map to environment variables by replacing dots with
// underscores, e.g. catalog.source is CATALOG_SOURCE.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
