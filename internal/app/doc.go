// Package app wires application dependencies for the CLI.
//
// It builds the base alphabet, the letter-frequency profile source and the
// analysis service from Config, exposing them via the App struct for
// commands to use.
package app
