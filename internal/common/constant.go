// Package common contains shared constants and sentinel errors used across
// tenantline components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// PassphraseMetadataKey is the local metadata key holding the messaging
// passphrase. Absence means encryption is disabled.
const PassphraseMetadataKey = "messaging.passphrase"
