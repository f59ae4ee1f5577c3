package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newFastHasher() *BcryptHasher {
	// min cost keeps the suite quick
	return NewBcryptHasher(bcrypt.MinCost)
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	t.Parallel()

	h := newFastHasher()

	h1, err := h.Hash("p@ss1234")
	require.NoError(t, err)
	h2, err := h.Hash("p@ss1234")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "two hashes of the same password must differ")
	assert.True(t, h.Verify("p@ss1234", h1))
	assert.True(t, h.Verify("p@ss1234", h2))
}

func TestBcryptHasher_VerifyRejectsWrongPassword(t *testing.T) {
	t.Parallel()

	h := newFastHasher()

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)

	assert.False(t, h.Verify("battery staple", hash))
	assert.False(t, h.Verify("", hash))
}

func TestBcryptHasher_VerifyMalformedHash(t *testing.T) {
	t.Parallel()

	h := newFastHasher()

	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("anything", ""))
}

func TestNewBcryptHasher_CostOutOfRangeFallsBack(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(1000)
	hash, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
