package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cheap parameters keep the tests fast.
var testHashParams = HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestHash(t *testing.T) {
	hash, err := Hash("Aa0!xyzq")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6, "PHC string %q", hash)
	assert.Equal(t, "argon2id", parts[1])
	assert.Equal(t, "v=19", parts[2])
	assert.Equal(t, "m=65536,t=3,p=2", parts[3])
}

func TestHashGeneratedPasswordRoundTrip(t *testing.T) {
	password, err := Generate(DefaultOptions())
	require.NoError(t, err)

	hash, err := HashWithParams(password, testHashParams)
	require.NoError(t, err)

	match, err := Verify(password, hash)
	require.NoError(t, err)
	assert.True(t, match, "hash should verify against its password")

	match, err = Verify(password+"x", hash)
	require.NoError(t, err)
	assert.False(t, match, "hash should not verify against a different password")
}

func TestHashUsesFreshSalt(t *testing.T) {
	hash1, err := HashWithParams("same-secret", testHashParams)
	require.NoError(t, err)
	hash2, err := HashWithParams("same-secret", testHashParams)
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestVerifyInvalidHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{name: "garbage", encoded: "invalid-hash-format", wantErr: ErrInvalidHashFormat},
		{name: "wrong algorithm", encoded: "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$a2V5", wantErr: ErrInvalidHashFormat},
		{name: "wrong version", encoded: "$argon2id$v=16$m=1,t=1,p=1$c2FsdA$a2V5", wantErr: ErrIncompatibleVersion},
		{name: "bad salt", encoded: "$argon2id$v=19$m=1,t=1,p=1$!!!$a2V5", wantErr: ErrInvalidHashFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Verify("password", tt.encoded)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
