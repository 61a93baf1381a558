// Package config provides configuration management for the ship registry.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags of
// each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, timeouts)
//   - Storage: S3/MinIO credentials and the bucket holding snapshots
//   - Snapshot: object layout, cache TTL, classifier override, skip policy
//   - Database: optional export database (MySQL or SQLite)
//   - Log: Logging level and format
//
// Nested keys map to upper-case environment variables joined by underscores,
// so snapshot.cache_ttl_seconds is read from SNAPSHOT_CACHE_TTL_SECONDS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Snapshot.Prefix)
package config
