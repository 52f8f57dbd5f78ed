// Package commands defines the lettra CLI and wires dependencies for subcommands.
//
// Commands
//
//   - play    Start an interactive round
//   - hash    Print the resume hash of a word
//   - words   Show dictionary stats for the configured word length
//
// # Implementation
//
// The root command parses configuration from the environment, applies flag
// overrides and builds the app context before any subcommand runs, so
// handlers share one dependency graph.
package commands
