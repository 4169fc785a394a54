package security_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/groupdrive-backend/pkg/config"
	"github.com/angelmondragon/groupdrive-backend/pkg/security"
)

var testCfg = config.PasswordConfig{
	ArgonMemoryKB:    8 * 1024,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     16,
	ArgonKeyLen:      32,
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := security.HashPassword("very-secure-password", testCfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=8192,t=1,p=1$"))

	ok, err := security.VerifyPassword("very-secure-password", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = security.VerifyPassword("bogus-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	_, err := security.NewHasher(testCfg).Hash("")
	assert.Error(t, err)
}

func TestVerifyPasswordBadHash(t *testing.T) {
	cases := []string{
		"not-a-hash",
		"$bcrypt$v=19$m=8,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8,t=1$c2FsdA$",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$aGFzaA",
	}
	for _, encoded := range cases {
		_, err := security.VerifyPassword("irrelevant", encoded)
		assert.ErrorIs(t, err, security.ErrInvalidHash, encoded)
	}

	_, err := security.VerifyPassword("irrelevant", "$argon2id$v=16$m=8,t=1,p=1$c2FsdA$aGFzaA")
	assert.ErrorIs(t, err, security.ErrIncompatibleVersion)
}

func TestNeedsRehash(t *testing.T) {
	hasher := security.NewHasher(testCfg)
	hash, err := hasher.Hash("very-secure-password")
	require.NoError(t, err)
	assert.False(t, hasher.NeedsRehash(hash))

	stronger := testCfg
	stronger.ArgonTime = 2
	assert.True(t, security.NewHasher(stronger).NeedsRehash(hash))
	assert.True(t, hasher.NeedsRehash("garbage"))
}

func TestParamsAreClamped(t *testing.T) {
	params := security.NewHasher(config.PasswordConfig{}).Params()
	assert.EqualValues(t, 8, params.Memory)
	assert.EqualValues(t, 1, params.Time)
	assert.EqualValues(t, 1, params.Parallelism)
	assert.EqualValues(t, 8, params.SaltLen)
	assert.EqualValues(t, 16, params.KeyLen)
}

func TestGenerateTempPassword(t *testing.T) {
	pw, err := security.GenerateTempPassword(16)
	require.NoError(t, err)
	assert.Len(t, pw, 16)
	assert.NotContains(t, pw, "0")
	assert.NotContains(t, pw, "O")

	_, err = security.GenerateTempPassword(4)
	assert.Error(t, err)
}
