// Package app wires application dependencies for the CLI.
//
// It loads Config from YAML, builds the zap logger, and for every session
// constructs a fresh in-memory address book, the contact service and the
// dispatcher, exposing them via the Wire struct. App runs sessions on top of
// that graph.
package app
