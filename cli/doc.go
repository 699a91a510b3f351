// Package cli contains the command line interface for lamb.
//
// # Usage
//
// With no subcommand, the arguments are joined into one expression, parsed,
// and the syntax tree is printed along with any unconsumed input:
//
//	lamb '\x -> x'
//	lamb 11dog
//
// The fmt subcommand writes the parsed expression as native syntax, JSON,
// YAML, or a Go syntax tree:
//
//	lamb fmt json --indent=0 '\a -> 1'
//	echo 42 | lamb fmt yaml
//
// Input comes from the positional arguments, then from --source files, then
// from stdin.
//
// # Parser Options
//
//   - --strict: Fail when anything but whitespace follows the expression
//   - --max-depth: Maximum function nesting depth (0 for no limit)
//
// # Configuration
//
// The init subcommand writes the current flag values to config.yaml in the
// user configuration directory. Values in that file are applied as flag
// defaults on later runs; nested mappings are flattened with "-", so
// "log: {level: debug}" sets --log-level. A config.json beside it is read
// as well. Command-line flags override both.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-file: Append log messages to a file instead of stderr
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o lamb .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/lamb/pprof)
//
// # Examples
//
//	# Trace every parse step as text
//	lamb --log-level=trace --log-format=text '\f -> \g -> 1'
//
//	# Reject leftover input
//	lamb --strict 11dog
//
//	# CPU profile of a large input
//	lamb --pprof-mode=cpu fmt ast --source=big.lamb
package cli
