package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("correcthorse")
	require.NoError(t, err)
	require.NotEqual(t, "correcthorse", hash)

	assert.True(t, CheckPassword(hash, "correcthorse"))
	assert.False(t, CheckPassword(hash, "wrongbattery"))
	assert.False(t, CheckPassword("not-a-hash", "correcthorse"))
}
