// Package cli provides the interactive TravelKeeper command-line client.
//
// It wires configuration, the local SQLite store, the server API client and
// an interactive REPL that keeps working when the server is unreachable.
// Typical flow: prompt for credentials, start a background connectivity
// watcher, and execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - Add travels (with an optional photo upload)
//   - List all travels / list own travels
//   - Show / Delete a single travel
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and Root for details.
package cli
