// Package config provides configuration loading, merging, and validation
// facilities for the volunteer hub server.
//
// Configuration is assembled from multiple sources; a field set by an
// earlier source is kept:
//  1. Environment variables (an optional .env file is loaded first)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
