package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/tenantline/internal/client/models"
	"github.com/dmitrijs2005/tenantline/internal/entitlements"
	"github.com/dmitrijs2005/tenantline/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessenger_DeniedForFreeTenant(t *testing.T) {
	fc := &fakeClient{}
	profile := models.Profile{UserID: "u-1", Plan: "free", Role: "tenant"}

	m, err := NewMessenger(profile, fc, NewSession(setupDB(t)), MessengerOptions{}, logging.NewNop())
	require.ErrorIs(t, err, ErrEntitlementDenied)
	require.ErrorIs(t, err, entitlements.ErrDenied)
	require.Nil(t, m)
	assert.Equal(t, 0, fc.ListConvCalls)
}

func TestNewMessenger_UnknownPlanDenied(t *testing.T) {
	profile := models.Profile{Plan: "gold", Role: "tenant"}
	_, err := NewMessenger(profile, &fakeClient{}, NewSession(setupDB(t)), MessengerOptions{}, logging.NewNop())
	require.ErrorIs(t, err, ErrEntitlementDenied)
}

func TestMessenger_EndToEnd(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	session := NewSession(db)
	require.NoError(t, session.SavePassphrase(ctx, "secret"))

	fc := &fakeClient{Conversations: []models.Conversation{{ID: "c1", ParticipantName: "Lena Landlord", UnreadCount: 1}}}
	profile := models.Profile{UserID: "u-1", Plan: "Premium", Role: "tenant"}

	m, err := NewMessenger(profile, fc, session, MessengerOptions{Codec: testCodec, DecodeWorkers: 2}, logging.NewNop())
	require.NoError(t, err)
	defer m.Close()

	convs, err := m.Conversations().Load(ctx)
	require.NoError(t, err)
	require.Len(t, convs, 1)

	_, err = m.Controller().Select(ctx, "c1")
	require.NoError(t, err)

	msg, err := m.Controller().Send(ctx, "Hello landlord")
	require.NoError(t, err)
	assert.Equal(t, "Hello landlord", msg.Body)
	assert.NotEqual(t, "Hello landlord", fc.sent()[0])

	m.Close()
	conv, _ := m.Conversations().Get("c1")
	assert.Equal(t, 0, conv.UnreadCount)
	assert.Equal(t, "Hello landlord", conv.LastMessage)
}

func TestMessenger_StartConversation(t *testing.T) {
	fc := &fakeClient{StartConvRet: &models.Conversation{ID: "c5", ParticipantName: "Ivan"}}
	m, err := NewMessenger(models.Profile{Plan: "premium", Role: "artisan"}, fc, NewSession(setupDB(t)), MessengerOptions{}, logging.NewNop())
	require.NoError(t, err)

	conv, err := m.StartConversation(context.Background(), "ivan")
	require.NoError(t, err)
	assert.Equal(t, "c5", conv.ID)
	assert.Equal(t, "ivan", fc.LastParticipant)
	_, ok := m.Conversations().Get("c5")
	assert.True(t, ok)

	fc.StartConvErr = errors.New("no such user")
	_, err = m.StartConversation(context.Background(), "ghost")
	require.ErrorContains(t, err, "start conversation")
}
