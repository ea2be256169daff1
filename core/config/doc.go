// Package config provides configuration management for the bulk seeder.
//
// Settings come from environment variables, optionally loaded from a .env
// file, and are decoded with Viper. Every key has a default declared in the
// `default` struct tag of its section.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Database: the default database connection (mysql, sqlite, mongodb)
//   - Storage: S3/MinIO credentials and bucket for bucket sources and reports
//   - Log: logging level and format
//   - Seed: plan path, environment flag, source kind, marker field, insert timeout
//
// Nested keys map to upper-case variables joined by underscores, e.g.
// seed.insert_timeout_seconds is SEED_INSERT_TIMEOUT_SECONDS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Seed.Plan)
package config
