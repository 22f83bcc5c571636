// Package metadata stores small key/value records in the client's local
// SQLite database: offline login data, the last login profile and the
// messaging passphrase.
package metadata
