// Package commands defines the aplusb CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (root)         Read input.txt, sum both integers, write output.txt
//   - fingerprint    Print a short fingerprint of the stored result
//
// # Implementation
//
// The root command builds the dependency graph (stores, summation service,
// pipeline) before any command runs. Failures are printed to stderr as a
// single line and reported to main as a non-nil error, which exits 1.
package commands
