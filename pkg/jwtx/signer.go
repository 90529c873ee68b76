package jwtx

import (
	"crypto/rsa"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	PublicJWK() JWK
	Validate() error
}

// RS256Signer implements the Signer interface using RSA-SHA256.
type RS256Signer struct {
	kid string
	key *rsa.PrivateKey
	alg string
}

// NewSignerRS256 creates an RS256 signer from key material (PEM or base64
// DER, PKCS1 or PKCS8). The kid is derived from the public key when empty.
func NewSignerRS256(kid string, keyMaterial []byte) (*RS256Signer, error) {
	key, err := ParseRSAPrivateKey(keyMaterial)
	if err != nil {
		return nil, err
	}
	return NewSignerRS256FromKey(kid, key)
}

// NewSignerRS256FromKey wraps an already-parsed RSA private key.
func NewSignerRS256FromKey(kid string, key *rsa.PrivateKey) (*RS256Signer, error) {
	if key == nil {
		return nil, errors.New("jwtx: nil RSA key")
	}
	if kid == "" {
		kid = KeyID(&key.PublicKey)
	}

	return &RS256Signer{
		kid: kid,
		key: key,
		alg: jwt.SigningMethodRS256.Alg(),
	}, nil
}

func (s *RS256Signer) Alg() string { return s.alg }
func (s *RS256Signer) KID() string { return s.kid }

// Sign takes your claims and turns them into a signed JWT string.
func (s *RS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// Public returns the verification half of the signing key.
func (s *RS256Signer) Public() *rsa.PublicKey { return &s.key.PublicKey }

// PublicJWK returns a JWK for inclusion in a JWKS. This is what you'll
// publish so others can verify your tokens.
func (s *RS256Signer) PublicJWK() JWK {
	return NewRSAJWK(s.kid, "sig", s.alg, &s.key.PublicKey)
}

// Validate does a quick sanity check to make sure we actually have a key.
func (s *RS256Signer) Validate() error {
	if s.key == nil {
		return errors.New("jwtx: nil RSA key")
	}
	return s.key.Validate()
}
