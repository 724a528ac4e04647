// Package app wires application dependencies for the CLI.
//
// It builds the concrete stores, the summation service and the pipeline
// from Config, exposing them via the Wire struct for commands to use.
package app
