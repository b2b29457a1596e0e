package service

import (
	"context"
	"testing"

	"tutor_dashboard_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tutorsGrid() [][]string {
	return [][]string{
		{"Tutor_ID", "Password", "Name"},
		{"T1", "hunter2", "Alice"},
		{"T2", " spaced ", ""},
	}
}

func TestAuthenticate(t *testing.T) {
	store := newFakeStore()
	store.addSheet("Tutors", tutorsGrid())
	h := newHarness(store)

	tests := []struct {
		name     string
		tutorID  string
		password string
		wantErr  error
		wantName string
	}{
		{"valid", "T1", "hunter2", nil, "Alice"},
		{"trimmed id and password", " T1 ", " hunter2 ", nil, "Alice"},
		{"name falls back to id", "T2", "spaced", nil, "T2"},
		{"unknown tutor", "T9", "hunter2", util.ErrUnknownTutor, ""},
		{"wrong password", "T1", "wrong", util.ErrBadCredentials, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := h.auth.Authenticate(context.Background(), tt.tutorID, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsCredentialError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, identity.Name)
		})
	}
}

func TestLoginIssuesParsableToken(t *testing.T) {
	store := newFakeStore()
	store.addSheet("Tutors", tutorsGrid())
	h := newHarness(store)

	token, identity, err := h.auth.Login(context.Background(), "T1", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "T1", identity.ID)

	claims, err := util.ParseJWT(token, h.auth.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "T1", claims.TutorID)
	assert.Equal(t, "Alice", claims.Name)
}

func TestAuthenticateResolvesDriftedTutorsTitle(t *testing.T) {
	store := newFakeStore()
	store.addSheet("Tutors ", tutorsGrid()) // physical title drifted
	h := newHarness(store)

	identity, err := h.auth.Authenticate(context.Background(), "T1", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Alice", identity.Name)
}
