// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. Later sources override
// non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. JSON config file (path from -c/-config or CONFIG)
//  3. .env file (path from -env-file, ".env" when present)
//  4. Environment variables
//  5. Command-line flags
//
// The main entry point is [Load].
package config
