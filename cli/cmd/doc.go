// Package cmd implements the lamb subcommands: parse, fmt, and init.
//
// Commands receive their I/O and parser settings through the context built
// by the cli package, so tests can drive them with in-memory readers and
// writers.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file written by init and read at startup.
	ConfigIdentifier = "config"
)
