// Package cli provides the interactive tenantline command-line client.
//
// It wires configuration, the local SQLite store, the gRPC client and the
// messaging services into a REPL that works online and, for login and
// account information, offline.
//
// Typical flow: prompt for credentials, start a background connectivity
// watcher, check the direct messaging entitlement and then accept chat
// commands (ls, search, start, open, send, compose, history, passphrase).
// Users without the entitlement get an upgrade notice instead of the
// messaging commands.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
