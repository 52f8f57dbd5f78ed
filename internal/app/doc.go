// Package app wires application dependencies for the CLI.
//
// It parses Config from the environment and builds the concrete word source
// and services, exposing them via the App struct for commands to use.
package app
