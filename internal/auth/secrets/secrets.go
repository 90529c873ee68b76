// Package secrets abstracts where the token signing key pair comes from.
// Production deployments pull base64 DER material out of Vault; static file
// sources exist for local development and tests.
package secrets

import "context"

// Source yields raw signing key material. The bytes may be PEM or base64
// DER, jwtx accepts both.
type Source interface {
	PrivateKey(ctx context.Context) ([]byte, error)
	PublicKey(ctx context.Context) ([]byte, error)
}
