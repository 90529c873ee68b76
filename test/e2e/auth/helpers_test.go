package auth_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "github.com/defensedrill/auth/internal/auth/http"
	"github.com/defensedrill/auth/internal/auth/service"
	"github.com/defensedrill/auth/internal/auth/store"
	"github.com/defensedrill/auth/internal/auth/store/drivers/sqlite"
	"github.com/defensedrill/auth/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	adminName     = "root_admin"
	adminPassword = "bootstrap-pass"
)

type fixture struct {
	server *httptest.Server
	store  store.Store
	users  *service.UserService
	tokens *service.TokenService
}

// setupService boots the full HTTP stack in-process: real sqlite store, real
// RSA keys, the production router with its middleware chain, and a seeded
// admin account.
func setupService(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	signer, err := jwtx.NewSignerRS256FromKey("", key)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	tokens := &service.TokenService{
		Signer:   signer,
		Verifier: jwtx.NewVerifierRS256(keys, "DefenseDrillWeb"),
		Issuer:   "DefenseDrillWeb",
		AdminTTL: 30 * time.Minute,
		UserTTL:  744 * time.Hour,
	}
	users := &service.UserService{Store: st}
	auth := &service.AuthService{Store: st, Token: tokens}
	boot := &service.BootstrapService{
		Store:         st,
		Users:         users,
		AdminName:     adminName,
		AdminPassword: adminPassword,
	}

	_, err = boot.SeedAdmin(context.Background())
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := httpapi.NewRouter(keys, "test", false, st, logger)
	router.AuthService = auth
	router.UserService = users
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &fixture{server: server, store: st, users: users, tokens: tokens}
}

type tokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Roles string `json:"roles"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// doJSON performs a JSON request, optionally with a bearer token, and decodes
// the response body into out when out is non-nil.
func (f *fixture) doJSON(t *testing.T, method, path, bearer string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, f.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// authenticate exchanges credentials for a session token via the HTTP API.
func (f *fixture) authenticate(t *testing.T, name, password string) string {
	t.Helper()

	var tok tokenResponse
	resp := f.doJSON(t, http.MethodPost, "/authenticate", "",
		map[string]string{"username": name, "password": password}, &tok)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, tok.Token)
	return tok.Token
}
