package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mecmec98/billingrestapi/internal/utils"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("supersecret1")
	require.NoError(t, err)
	require.NotEqual(t, "supersecret1", hash)

	assert.True(t, utils.CheckPasswordHash("supersecret1", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}

func TestCheckPasswordHash_TrimsWhitespace(t *testing.T) {
	hash, err := utils.HashPassword("supersecret1")
	require.NoError(t, err)

	// Copy-paste artifacts around the password should not break login.
	assert.True(t, utils.CheckPasswordHash("  supersecret1  ", hash))
}
