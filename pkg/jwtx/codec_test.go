package jwtx_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/chapterhouse/pageturn/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	codec, err := jwtx.NewEphemeralCodec("pageturn-test")
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims("user-1", "alice", "pageturn-test", time.Minute, time.Now())
	token, err := codec.SignAccess(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := codec.VerifyAccess(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "alice", got.Username)
}

func TestInviteTokenRoundTrip(t *testing.T) {
	codec, err := jwtx.NewEphemeralCodec("pageturn-test")
	require.NoError(t, err)

	claims := jwtx.NewInviteClaims("sender-1", "recipient-1", "club-1",
		"pageturn-test", jwtx.DefaultInviteTokenTTL, time.Now())
	token, err := codec.SignInvite(claims)
	require.NoError(t, err)

	got, err := codec.VerifyInvite(token)
	require.NoError(t, err)
	require.Equal(t, "sender-1", got.SenderID)
	require.Equal(t, "recipient-1", got.RecipientID)
	require.Equal(t, "club-1", got.ClubID)
}

func TestVerifyInvite_Expired(t *testing.T) {
	codec, err := jwtx.NewEphemeralCodec("pageturn-test")
	require.NoError(t, err)

	// Issue a token whose lifetime already lapsed.
	issued := time.Now().Add(-8 * 24 * time.Hour)
	claims := jwtx.NewInviteClaims("s", "r", "c", "pageturn-test", jwtx.DefaultInviteTokenTTL, issued)
	token, err := codec.SignInvite(claims)
	require.NoError(t, err)

	_, err = codec.VerifyInvite(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyInvite_Tampered(t *testing.T) {
	codec, err := jwtx.NewEphemeralCodec("pageturn-test")
	require.NoError(t, err)

	claims := jwtx.NewInviteClaims("s", "r", "c", "pageturn-test", time.Hour, time.Now())
	token, err := codec.SignInvite(claims)
	require.NoError(t, err)

	_, err = codec.VerifyInvite(token + "x")
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}

func TestVerify_WrongKey(t *testing.T) {
	signer, err := jwtx.NewEphemeralCodec("pageturn-test")
	require.NoError(t, err)
	other, err := jwtx.NewEphemeralCodec("pageturn-test")
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims("user-1", "alice", "pageturn-test", time.Minute, time.Now())
	token, err := signer.SignAccess(claims)
	require.NoError(t, err)

	// Different keypair means different kid, so verification must fail.
	_, err = other.VerifyAccess(token)
	require.ErrorIs(t, err, jwtx.ErrInvalid)
}

func TestVerify_IssuerMismatch(t *testing.T) {
	codec, err := jwtx.NewEphemeralCodec("expected-issuer")
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims("user-1", "alice", "someone-else", time.Minute, time.Now())
	token, err := codec.SignAccess(claims)
	require.NoError(t, err)

	_, err = codec.VerifyAccess(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestLoadOrGenerateKeyPEM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signing.pem")

	first, err := jwtx.LoadOrGenerateKeyPEM(path)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// Second load must return the persisted key, not a new one.
	second, err := jwtx.LoadOrGenerateKeyPEM(path)
	require.NoError(t, err)
	require.Equal(t, first, second)

	codec, err := jwtx.NewCodec("pageturn-test", first)
	require.NoError(t, err)
	require.NotEmpty(t, codec.KID())
}
