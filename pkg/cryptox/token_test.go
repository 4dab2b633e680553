package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Verify token is unique (generate another and compare)
	token2, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.NotEqual(t, token, token2, "tokens should be unique")
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
}

func TestFingerprintToken(t *testing.T) {
	fp1a := FingerprintToken("test-token-1")
	fp1b := FingerprintToken("test-token-1")
	fp2 := FingerprintToken("test-token-2")

	// Fingerprint should be deterministic
	require.Equal(t, fp1a, fp1b, "fingerprint should be deterministic")

	// Different tokens should have different fingerprints
	require.NotEqual(t, fp1a, fp2)

	// Fingerprint should be base64url encoded SHA-256 (43 chars)
	require.Len(t, fp1a, 43)
}
