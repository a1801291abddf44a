// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults such as the 100ms poll interval and the 4096-byte read chunk are
// applied to whatever is still unset. The main entry point is
// [GetClientConfig].
package config
