package jwtx

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

// ParseRSAPrivateKey loads an RSA private key from PEM bytes or from a
// base64-encoded DER blob (the layout secret stores tend to hand back).
// PKCS1 and PKCS8 encodings are both accepted.
func ParseRSAPrivateKey(material []byte) (*rsa.PrivateKey, error) {
	der, err := decodeKeyMaterial(material, "PRIVATE KEY")
	if err != nil {
		return nil, err
	}

	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("jwtx: not an RSA private key")
		}
		return rsaKey, nil
	}

	key, err := x509.ParsePKCS1PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse private key: %w", err)
	}
	return key, nil
}

// ParseRSAPublicKey loads an RSA public key from PEM bytes or a
// base64-encoded DER blob (PKIX encoding).
func ParseRSAPublicKey(material []byte) (*rsa.PublicKey, error) {
	der, err := decodeKeyMaterial(material, "PUBLIC KEY")
	if err != nil {
		return nil, err
	}

	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse public key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("jwtx: not an RSA public key")
	}
	return rsaKey, nil
}

// KeyID derives a stable key identifier from a public key: the first bytes
// of the SHA-256 of the PKIX encoding, base64url encoded. Deterministic so
// every process holding the same key pair publishes the same kid.
func KeyID(pub *rsa.PublicKey) string {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "unknown"
	}
	sum := sha256.Sum256(der)
	return base64.RawURLEncoding.EncodeToString(sum[:8])
}

// decodeKeyMaterial normalizes key input: a PEM block wins, otherwise the
// input is treated as base64 DER.
func decodeKeyMaterial(material []byte, wantBlockSuffix string) ([]byte, error) {
	if block, _ := pem.Decode(material); block != nil {
		if !strings.HasSuffix(block.Type, wantBlockSuffix) {
			return nil, fmt.Errorf("jwtx: unexpected PEM block %q", block.Type)
		}
		return block.Bytes, nil
	}

	trimmed := strings.TrimSpace(string(material))
	der, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, errors.New("jwtx: key material is neither PEM nor base64 DER")
	}
	return der, nil
}
