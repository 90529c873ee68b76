package app

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeKeyPair(t *testing.T, dir string, key *rsa.PrivateKey, pub *rsa.PublicKey) (string, string) {
	t.Helper()

	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	pubDER, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	require.NoError(t, os.WriteFile(privPath, privPEM, 0o600))
	require.NoError(t, os.WriteFile(pubPath, pubPEM, 0o600))
	return privPath, pubPath
}

func TestInitAuthKeys(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("static source builds a signer and key set", func(t *testing.T) {
		privPath, pubPath := writeKeyPair(t, t.TempDir(), key, &key.PublicKey)

		cfg := Config{KeySource: "static", PrivateKeyFile: privPath, PublicKeyFile: pubPath}
		signer, keys, err := InitAuthKeys(ctx, cfg, logger)
		require.NoError(t, err)
		require.Equal(t, "RS256", signer.Alg())
		require.True(t, keys.IsReady())
	})

	t.Run("mismatched public half aborts startup", func(t *testing.T) {
		other, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)

		privPath, pubPath := writeKeyPair(t, t.TempDir(), key, &other.PublicKey)

		cfg := Config{KeySource: "static", PrivateKeyFile: privPath, PublicKeyFile: pubPath}
		_, _, err = InitAuthKeys(ctx, cfg, logger)
		require.ErrorContains(t, err, "does not match")
	})

	t.Run("unknown source is rejected", func(t *testing.T) {
		_, _, err := InitAuthKeys(ctx, Config{KeySource: "hsm"}, logger)
		require.Error(t, err)
	})
}
