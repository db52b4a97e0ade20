package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("banana-slug")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.True(t, VerifyPassword("banana-slug", hash))
	assert.False(t, VerifyPassword("banana-slugs", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("banana-slug")
	require.NoError(t, err)
	second, err := HashPassword("banana-slug")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("banana-slug", second))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("banana-slug", "not-a-hash"))
	assert.False(t, VerifyPassword("banana-slug", ""))
	assert.False(t, VerifyPassword("banana-slug", "$argon2id$v=19$m=65536,t=1,p=4$short"))
}
