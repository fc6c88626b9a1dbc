// Package app wires application dependencies for the CLI.
//
// It loads Config from the keyring home directory, builds the file stores and
// high-level services from it, and exposes them via the Wire struct for
// commands to use.
package app
