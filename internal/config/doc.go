// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Legacy environment variables (MONGODB_URI, DB_NAME)
//  4. Command-line flags
//  5. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
