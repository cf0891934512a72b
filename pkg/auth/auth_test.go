package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManager_MintParse(t *testing.T) {
	t.Parallel()
	m := NewManager(Config{Secret: "s3cret", Issuer: "libralite", TTL: time.Hour})

	token, err := m.Mint("LIB-12345678", "Jane Doe")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "LIB-12345678", claims.Subject)
	require.Equal(t, "Jane Doe", claims.Name)
}

func TestManager_ParseRejects(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManager(Config{Secret: "s3cret", Issuer: "libralite", TTL: time.Hour})
	m.now = func() time.Time { return now }

	token, err := m.Mint("LIB-12345678", "")
	require.NoError(t, err)

	other := NewManager(Config{Secret: "other", Issuer: "libralite", TTL: time.Hour})
	other.now = m.now
	_, err = other.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	m.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = m.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewManager(Config{}).Mint("LIB-12345678", "")
	require.ErrorIs(t, err, ErrSecretRequired)
}

func TestAuthContext(t *testing.T) {
	t.Parallel()
	_, ok := CardNumberFromContext(context.Background())
	require.False(t, ok)

	card, ok := CardNumberFromContext(SetAuthContext(context.Background(), "LIB-00000001"))
	require.True(t, ok)
	require.Equal(t, "LIB-00000001", card)
}

func TestEnsureSecret(t *testing.T) {
	t.Parallel()
	cfg, generated, err := EnsureSecret(Config{Secret: "set"})
	require.NoError(t, err)
	require.False(t, generated)
	require.Equal(t, "set", cfg.Secret)

	cfg, generated, err = EnsureSecret(Config{Issuer: "libralite"})
	require.NoError(t, err)
	require.True(t, generated)
	require.Len(t, cfg.Secret, 64)
	require.Equal(t, "libralite", cfg.Issuer)
}
