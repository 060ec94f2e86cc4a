// Package config provides configuration loading, merging, and validation
// facilities for the notes daemon and CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source are filled from the Default* constants.
// The main entry points are [GetStructuredConfig] for the daemon and
// [GetClientConfig] for the CLI.
package config
