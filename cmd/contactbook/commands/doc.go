// Package commands defines the contactbook CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)   Start an interactive session on stdin
//   - run      Feed a file of command lines through a session
//   - exec     Run a single command against an empty book
//
// # Implementation
//
// The root command loads the YAML config, applies flag overrides and builds
// the zap logger before any subcommand runs, so handlers share one app
// context. Every session gets its own empty address book; nothing survives
// the process.
package commands
