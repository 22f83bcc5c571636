package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/tenantline/internal/client/models"
	"github.com/dmitrijs2005/tenantline/internal/common"
	"github.com/stretchr/testify/require"
)

func TestSession_LoadPassphrase_AbsentIsEmpty(t *testing.T) {
	db := setupDB(t)
	s := NewSession(db)

	p, err := s.LoadPassphrase(context.Background())
	require.NoError(t, err)
	require.Equal(t, "", p)
	require.Equal(t, "", s.Passphrase())
}

func TestSession_SaveThenLoadInNewSession(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	s := NewSession(db)
	require.NoError(t, s.SavePassphrase(ctx, "secret"))
	require.Equal(t, "secret", s.Passphrase())
	require.Equal(t, []byte("secret"), getMeta(t, db, common.PassphraseMetadataKey))

	restored := NewSession(db)
	require.Equal(t, "", restored.Passphrase())
	p, err := restored.LoadPassphrase(ctx)
	require.NoError(t, err)
	require.Equal(t, "secret", p)
	require.Equal(t, "secret", restored.Passphrase())
}

func TestSession_ClearPassphraseRemovesRecord(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	s := NewSession(db)
	require.NoError(t, s.SavePassphrase(ctx, "secret"))
	require.NoError(t, s.ClearPassphrase(ctx))
	require.Equal(t, "", s.Passphrase())
	require.Equal(t, 0, countMeta(t, db))
}

func TestSession_Profile(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := NewSession(db)

	p, err := s.LoadProfile(ctx)
	require.NoError(t, err)
	require.Nil(t, p)

	want := &models.Profile{UserID: "u-1", UserName: "anna", Plan: "free", Role: "tenant"}
	require.NoError(t, s.SaveProfile(ctx, want))

	got, err := s.LoadProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestSession_SaveFailsOnClosedDB(t *testing.T) {
	db := setupDB(t)
	s := NewSession(db)
	require.NoError(t, db.Close())

	err := s.SavePassphrase(context.Background(), "x")
	require.ErrorContains(t, err, "save passphrase")
	require.Equal(t, "", s.Passphrase())
}
