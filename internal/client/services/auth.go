// Package services contains application services for the tenantline client:
// authentication, the passphrase session binding, the conversation store,
// the message lifecycle controller and the Messenger facade that gates them
// behind the direct messaging entitlement.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tenantline/internal/client/client"
	"github.com/dmitrijs2005/tenantline/internal/client/models"
	"github.com/dmitrijs2005/tenantline/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tenantline/internal/common"
	"github.com/dmitrijs2005/tenantline/internal/cryptox"
	"github.com/dmitrijs2005/tenantline/internal/dbx"
	"github.com/dmitrijs2005/tenantline/internal/entitlements"
)

// Metadata keys of the offline login record.
const (
	metaUsername = "username"
	metaSalt     = "salt"
	metaVerifier = "verifier"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - OnlineLogin: authenticate against the server, persist offline auth data
//     and the profile used by the entitlement gate.
//   - OfflineLogin: derive and verify credentials against locally cached data.
//   - Register: create a new user with the given marketplace role.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//   - ClearOfflineData: wipe locally cached auth data (the passphrase is kept).
type AuthService interface {
	OfflineLogin(ctx context.Context, username string, password []byte) ([]byte, error)
	OnlineLogin(ctx context.Context, username string, password []byte) ([]byte, *models.Profile, error)
	Register(ctx context.Context, username string, role string, password []byte) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	ClearOfflineData(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client
// and a local SQL database for offline metadata.
type authService struct {
	client client.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// OfflineLogin derives a master key from (password,salt) stored locally
// and verifies it against the locally cached verifier. Returns the master key
// on success. If local data is missing, returns client.ErrLocalDataNotAvailable;
// if verification fails, returns client.ErrUnauthorized.
func (a *authService) OfflineLogin(ctx context.Context, username string, password []byte) ([]byte, error) {
	metadataRepo := a.getMetadataRepo()

	saved := make(map[string][]byte, 3)
	for _, k := range []string{metaUsername, metaSalt, metaVerifier} {
		v, err := metadataRepo.Get(ctx, k)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, client.ErrLocalDataNotAvailable
		}
		saved[k] = v
	}

	if string(saved[metaUsername]) != username {
		return nil, client.ErrUnauthorized
	}

	masterKeyCandidate := cryptox.DeriveMasterKey(password, saved[metaSalt])
	verifierCandidate := cryptox.MakeVerifier(masterKeyCandidate)

	if subtle.ConstantTimeCompare(saved[metaVerifier], verifierCandidate) == 0 {
		return nil, client.ErrUnauthorized
	}
	return masterKeyCandidate, nil
}

// OnlineLogin authenticates against the server, saves offline metadata
// (username, salt, verifier, profile), and returns the derived master key
// together with the profile reported by the server.
func (a *authService) OnlineLogin(ctx context.Context, userName string, password []byte) ([]byte, *models.Profile, error) {
	salt, err := a.client.GetSalt(ctx, userName)
	if err != nil {
		return nil, nil, fmt.Errorf("get salt error: %w", err)
	}

	masterKeyCandidate := cryptox.DeriveMasterKey(password, salt)
	verifierCandidate := cryptox.MakeVerifier(masterKeyCandidate)

	profile, err := a.client.Login(ctx, userName, verifierCandidate)
	if err != nil {
		return nil, nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.saveOfflineData(ctx, userName, salt, verifierCandidate, profile); err != nil {
		return nil, nil, fmt.Errorf("offline data saving error: %w", err)
	}
	return masterKeyCandidate, profile, nil
}

// saveOfflineData persists everything needed for offline login in a single
// transaction.
func (a *authService) saveOfflineData(ctx context.Context, userName string, salt []byte, verifier []byte, profile *models.Profile) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		metadataRepo := metadata.NewSQLiteRepository(tx)

		if err := metadataRepo.Set(ctx, metaUsername, []byte(userName)); err != nil {
			return err
		}
		if err := metadataRepo.Set(ctx, metaSalt, salt); err != nil {
			return err
		}
		if err := metadataRepo.Set(ctx, metaVerifier, verifier); err != nil {
			return err
		}
		return saveProfile(ctx, metadataRepo, profile)
	})
}

// Register creates a new account on the server. It generates a random salt,
// derives a master key from the provided password, computes a verifier,
// and sends salt/verifier to the server. The role is validated locally first.
func (a *authService) Register(ctx context.Context, username string, role string, password []byte) error {
	r := entitlements.ParseRole(role)
	if !r.Valid() {
		return fmt.Errorf("%w: unknown role %q", common.ErrorValidation, role)
	}

	salt := common.GenerateRandByteArray(32)
	key := cryptox.DeriveMasterKey(password, salt)
	verifier := cryptox.MakeVerifier(key)

	return a.client.Register(ctx, username, string(r), salt, verifier)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// ClearOfflineData wipes locally cached auth data and the stored profile
// (e.g., on logout). The messaging passphrase survives logout.
func (a *authService) ClearOfflineData(ctx context.Context) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).DeleteKeys(ctx,
			metaUsername, metaSalt, metaVerifier,
			metaProfileUserID, metaProfileUserName, metaProfilePlan, metaProfileRole,
		)
	})
}
