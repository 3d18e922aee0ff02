package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stashlop/sillora/internal/config"
)

func newTestJWTer(ttl time.Duration) *JWTer {
	return NewJWTer(config.JWTConfig{
		Secret: "test-secret",
		Issuer: "sillora-test",
		TTL:    ttl,
	})
}

func TestJWTRoundTrip(t *testing.T) {
	jwter := newTestJWTer(time.Hour)

	token, err := jwter.Issue(42, "alice", "teacher")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwter.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.AccountID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "teacher", claims.Role)
	assert.Equal(t, "sillora-test", claims.Issuer)
}

func TestJWTWrongSecretRejected(t *testing.T) {
	token, err := newTestJWTer(time.Hour).Issue(1, "bob", "student")
	require.NoError(t, err)

	other := NewJWTer(config.JWTConfig{Secret: "different", Issuer: "sillora-test", TTL: time.Hour})
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestJWTExpiredRejected(t *testing.T) {
	jwter := newTestJWTer(-time.Minute)

	token, err := jwter.Issue(1, "bob", "student")
	require.NoError(t, err)

	_, err = jwter.Parse(token)
	assert.Error(t, err)
}

func TestJWTGarbageRejected(t *testing.T) {
	_, err := newTestJWTer(time.Hour).Parse("not.a.token")
	assert.Error(t, err)
}
