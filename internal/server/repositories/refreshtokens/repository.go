// Package refreshtokens declares the server-side repository contract for
// managing refresh tokens in persistent storage.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/tenantline/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking refresh tokens.
type Repository interface {
	// Create stores a new refresh token for userID with an expiry of now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find looks up a refresh token by its opaque token string.
	// A missing token yields common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Consume deletes the token and returns the removed row, so a token can
	// be redeemed at most once even under concurrent refreshes.
	Consume(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a refresh token. Deleting a missing token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired prunes userID's tokens whose expiry has passed.
	DeleteExpired(ctx context.Context, userID string) (int64, error)
}
