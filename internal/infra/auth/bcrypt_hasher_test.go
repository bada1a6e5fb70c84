package auth

import (
	"testing"

	"cinelog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *bcryptHasher {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}

	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	require.True(t, ok)

	return hasher
}

func TestBcryptHasher_HashIsSaltedAndNonDeterministic(t *testing.T) {
	hasher := newTestHasher(t)

	first, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	second, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-password", first)
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_CheckRoundTrip(t *testing.T) {
	hasher := newTestHasher(t)

	digest, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, hasher.Check("correct horse battery staple", digest))
	assert.False(t, hasher.Check("wrong password", digest))
	assert.False(t, hasher.Check("", digest))
}

func TestBcryptHasher_CheckAgainstGarbageDigestIsFalseNotError(t *testing.T) {
	hasher := newTestHasher(t)

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-digest"))
}

func TestNewBcryptHasher_CostOutOfRangeFallsBackToDefault(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}

	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
