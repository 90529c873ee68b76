package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/defensedrill/auth/internal/auth/store"
	"github.com/defensedrill/auth/internal/auth/store/drivers/sqlite"
	"github.com/defensedrill/auth/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	signer, err := jwtx.NewSignerRS256FromKey("", key)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	return &TokenService{
		Signer:   signer,
		Verifier: jwtx.NewVerifierRS256(keys, "DefenseDrillWeb"),
		Issuer:   "DefenseDrillWeb",
		AdminTTL: 30 * time.Minute,
		UserTTL:  744 * time.Hour,
	}
}

func seedUser(t *testing.T, users *UserService, name, password, roles string) int64 {
	t.Helper()

	u, err := users.Create(context.Background(), name, password, roles)
	require.NoError(t, err)
	return u.ID
}
