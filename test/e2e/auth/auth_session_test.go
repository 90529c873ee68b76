package auth_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func postLoginForm(t *testing.T, f *fixture, username, password string) *http.Response {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequest(http.MethodPost, f.server.URL+"/login", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{
		// Inspect the redirect rather than following it
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func sessionCookieFrom(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()

	for _, c := range resp.Cookies() {
		if c.Name == "jwt" {
			return c
		}
	}
	t.Fatal("no jwt cookie in response")
	return nil
}

func TestFormLoginSetsSessionCookie(t *testing.T) {
	f := setupService(t)

	resp := postLoginForm(t, f, adminName, adminPassword)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))

	cookie := sessionCookieFrom(t, resp)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, "/", cookie.Path)
	require.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	require.False(t, cookie.Secure, "secure flag stays off outside production")
	require.Equal(t, 30*60, cookie.MaxAge, "admin cookie lifetime matches the admin token TTL")

	// The cookie value is a working session token
	require.Equal(t, adminName, f.tokens.ExtractSubject(cookie.Value))

	t.Run("cookie authenticates directory requests", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, f.server.URL+"/user", nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: cookie.Value})

		res, err := f.server.Client().Do(req)
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)
	})
}

func TestFormLoginRejectsBadCredentials(t *testing.T) {
	f := setupService(t)

	resp := postLoginForm(t, f, adminName, "wrong")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Empty(t, resp.Cookies(), "no session cookie on failure")
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	f := setupService(t)

	req, err := http.NewRequest(http.MethodGet, f.server.URL+"/logout", nil)
	require.NoError(t, err)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	cookie := sessionCookieFrom(t, resp)
	require.Empty(t, cookie.Value)
	require.Negative(t, cookie.MaxAge, "Max-Age=0 on the wire tells the browser to drop it")
}

func TestDeletedUserLosesAccessImmediately(t *testing.T) {
	f := setupService(t)
	adminToken := f.authenticate(t, adminName, adminPassword)

	var created userResponse
	resp := f.doJSON(t, http.MethodPost, "/user", adminToken,
		map[string]string{"name": "frank_black", "password": "correct-horse", "roles": "ADMIN,USER"}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	frankToken := f.authenticate(t, "frank_black", "correct-horse")

	// Works while the record exists
	res := f.doJSON(t, http.MethodGet, "/user", frankToken, nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Delete frank; the still-unexpired token no longer resolves to a
	// principal because the filter re-reads the directory per request.
	res = f.doJSON(t, http.MethodDelete, "/user/id/"+itoa(created.ID), adminToken, nil, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	require.True(t, f.tokens.Validate(frankToken), "the token itself is still cryptographically valid")

	res = f.doJSON(t, http.MethodGet, "/user", frankToken, nil, nil)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestPasswordChangeDoesNotRevokeTokens(t *testing.T) {
	f := setupService(t)
	adminToken := f.authenticate(t, adminName, adminPassword)

	var created userResponse
	resp := f.doJSON(t, http.MethodPost, "/user", adminToken,
		map[string]string{"name": "grace_field", "password": "correct-horse", "roles": "ADMIN,USER"}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	graceToken := f.authenticate(t, "grace_field", "correct-horse")

	resp = f.doJSON(t, http.MethodPut, "/user/id/"+itoa(created.ID), adminToken,
		map[string]string{"name": "grace_field", "password": "brand-new-pass", "roles": "ADMIN,USER"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The old token keeps working until expiry; only new logins need the
	// new password.
	resp = f.doJSON(t, http.MethodGet, "/user", graceToken, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var errBody errorResponse
	resp = f.doJSON(t, http.MethodPost, "/authenticate", "",
		map[string]string{"username": "grace_field", "password": "correct-horse"}, &errBody)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
