// Package config provides configuration management for the inventory auditor.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details for the storefront database
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Audit: ledger object names, column mappings and reconciliation policies
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
