package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-jwt/jwt/v5"
)

// AccessVerifier validates access tokens. Satisfied by *Codec; kept as an
// interface so middleware does not depend on the concrete codec.
type AccessVerifier interface {
	VerifyAccess(tokenStr string) (*AccessClaims, error)
}

// Codec signs and verifies the service's JWTs with a single Ed25519
// keypair: short-lived access tokens and self-describing invite tokens.
type Codec struct {
	kid    string
	key    ed25519.PrivateKey
	pub    ed25519.PublicKey
	issuer string
}

// NewCodec loads an Ed25519 private key from PEM bytes (PKCS8).
func NewCodec(issuer string, pemKey []byte) (*Codec, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil {
		return nil, errors.New("jwtx: invalid PEM for Ed25519 key")
	}

	if block.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("jwtx: expected PRIVATE KEY, got %q (Ed25519 requires PKCS8)", block.Type)
	}

	priv, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse PKCS8: %w", err)
	}

	key, ok := priv.(ed25519.PrivateKey)
	if !ok {
		return nil, errors.New("jwtx: not Ed25519 private key")
	}

	pub := key.Public().(ed25519.PublicKey)

	return &Codec{
		kid:    deriveKID(pub),
		key:    key,
		pub:    pub,
		issuer: issuer,
	}, nil
}

// NewEphemeralCodec generates a fresh Ed25519 keypair in memory. Tokens do
// not survive a restart; useful for dev and tests.
func NewEphemeralCodec(issuer string) (*Codec, error) {
	pub, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate key: %w", err)
	}
	return &Codec{
		kid:    deriveKID(pub),
		key:    key,
		pub:    pub,
		issuer: issuer,
	}, nil
}

// LoadOrGenerateKeyPEM reads the PKCS8 PEM key at path, generating and
// persisting one (0600) on first run.
func LoadOrGenerateKeyPEM(path string) ([]byte, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}

	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate key: %w", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("jwtx: marshal PKCS8: %w", err)
	}
	data := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Codec) KID() string { return c.kid }

// SignAccess signs access-token claims.
func (c *Codec) SignAccess(claims AccessClaims) (string, error) {
	return c.sign(claims)
}

// SignInvite signs invite-token claims.
func (c *Codec) SignInvite(claims InviteClaims) (string, error) {
	return c.sign(claims)
}

func (c *Codec) sign(claims jwt.Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = c.kid
	return t.SignedString(c.key)
}

// VerifyAccess validates an access token and returns its claims.
func (c *Codec) VerifyAccess(tokenStr string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := c.verify(tokenStr, claims); err != nil {
		return nil, err
	}
	if c.issuer != "" && claims.Issuer != c.issuer {
		return nil, ErrIssuer
	}
	return claims, nil
}

// VerifyInvite validates an invitation token's signature and expiry and
// returns its claims. This runs before any database lookup so tampered or
// stale tokens cost no queries.
func (c *Codec) VerifyInvite(tokenStr string) (*InviteClaims, error) {
	claims := &InviteClaims{}
	if err := c.verify(tokenStr, claims); err != nil {
		return nil, err
	}
	if c.issuer != "" && claims.Issuer != c.issuer {
		return nil, ErrIssuer
	}
	return claims, nil
}

func (c *Codec) verify(tokenStr string, claims jwt.Claims) error {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid != c.kid {
			return nil, fmt.Errorf("jwtx: unknown kid %q", kid)
		}
		return c.pub, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return ErrNotYetValid
		default:
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if !token.Valid {
		return ErrInvalid
	}
	return nil
}

// deriveKID fingerprints the public key so verifiers can detect key
// mismatches without trying a signature check.
func deriveKID(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	return base64.RawURLEncoding.EncodeToString(sum[:8])
}
