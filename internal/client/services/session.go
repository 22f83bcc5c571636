package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/tenantline/internal/client/models"
	"github.com/dmitrijs2005/tenantline/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tenantline/internal/common"
	"github.com/dmitrijs2005/tenantline/internal/dbx"
)

// Metadata keys of the last login profile.
const (
	metaProfileUserID   = "profile.user_id"
	metaProfileUserName = "profile.username"
	metaProfilePlan     = "profile.plan"
	metaProfileRole     = "profile.role"
)

// Session binds the messaging passphrase to local durable storage and keeps
// the single current value in memory.
//
// The passphrase is stored as-is in the metadata table. Anyone with read
// access to the local database can read it.
type Session struct {
	db *sql.DB

	mu         sync.RWMutex
	passphrase string
}

func NewSession(db *sql.DB) *Session {
	return &Session{db: db}
}

func (s *Session) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Passphrase returns the current in-memory passphrase; "" means messages
// are sent as plaintext.
func (s *Session) Passphrase() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.passphrase
}

// LoadPassphrase restores the persisted passphrase into memory and returns
// it. A missing record yields "".
func (s *Session) LoadPassphrase(ctx context.Context) (string, error) {
	v, err := s.repo().Get(ctx, common.PassphraseMetadataKey)
	if err != nil {
		return "", fmt.Errorf("load passphrase: %w", err)
	}

	s.mu.Lock()
	s.passphrase = string(v)
	s.mu.Unlock()

	return string(v), nil
}

// SavePassphrase persists p and makes it the current value. Saving "" removes
// the record. Messages already decoded in memory are not affected.
func (s *Session) SavePassphrase(ctx context.Context, p string) error {
	repo := s.repo()

	var err error
	if p == "" {
		err = repo.Delete(ctx, common.PassphraseMetadataKey)
	} else {
		err = repo.Set(ctx, common.PassphraseMetadataKey, []byte(p))
	}
	if err != nil {
		return fmt.Errorf("save passphrase: %w", err)
	}

	s.mu.Lock()
	s.passphrase = p
	s.mu.Unlock()

	return nil
}

// ClearPassphrase disables encryption for new messages. History encrypted
// with the old passphrase can no longer be read.
func (s *Session) ClearPassphrase(ctx context.Context) error {
	return s.SavePassphrase(ctx, "")
}

// SaveProfile stores the last login profile so the entitlement gate can be
// evaluated in offline mode.
func (s *Session) SaveProfile(ctx context.Context, p *models.Profile) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return saveProfile(ctx, metadata.NewSQLiteRepository(tx), p)
	})
}

func saveProfile(ctx context.Context, repo metadata.Repository, p *models.Profile) error {
	values := map[string]string{
		metaProfileUserID:   p.UserID,
		metaProfileUserName: p.UserName,
		metaProfilePlan:     p.Plan,
		metaProfileRole:     p.Role,
	}
	for k, v := range values {
		if err := repo.Set(ctx, k, []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

// LoadProfile returns the stored profile, or nil when no login has been
// recorded yet.
func (s *Session) LoadProfile(ctx context.Context) (*models.Profile, error) {
	m, err := s.repo().GetKeys(ctx, metaProfileUserID, metaProfileUserName, metaProfilePlan, metaProfileRole)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if m[metaProfileUserID] == nil {
		return nil, nil
	}

	return &models.Profile{
		UserID:   string(m[metaProfileUserID]),
		UserName: string(m[metaProfileUserName]),
		Plan:     string(m[metaProfilePlan]),
		Role:     string(m[metaProfileRole]),
	}, nil
}
