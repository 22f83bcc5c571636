// Package client contains the client-side transport for tenantline.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) used by the
//     messaging core: authentication, conversation summaries, message
//     history, sending and read marks.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, transparently
//     refreshes expired tokens, and maps gRPC status codes to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrForbidden, ErrNotFound,
// ErrLocalDataNotAvailable.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use; token rotation is serialized.
// All operations accept context.Context and honor cancellation/timeouts.
package client
