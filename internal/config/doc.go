// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (a .env file, when present, is loaded into the
//     process environment first without overriding variables already set)
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied to fields still empty after merging, then the result
// is validated. The main entry point is [GetStructuredConfig].
package config
