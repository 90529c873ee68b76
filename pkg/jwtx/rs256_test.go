package jwtx_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"
	"time"

	"github.com/defensedrill/auth/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "DefenseDrillWeb"

func newTestKeyPEM(t *testing.T) (*rsa.PrivateKey, []byte) {
	t.Helper()

	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privKey),
	})
	return privKey, privPEM
}

func TestRS256SignAndVerify(t *testing.T) {

	_, privPEM := newTestKeyPEM(t)

	// Create signer
	signer, err := jwtx.NewSignerRS256("test-key", privPEM)
	require.NoError(t, err)
	require.NotNil(t, signer)
	require.NoError(t, signer.Validate())

	// Build claims using helper function
	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims("alice123", "USER,ADMIN", exampleIssuer, 2*time.Minute, now)

	// Sign token
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Build KeySet for verification
	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	// Verify token
	verifier := jwtx.NewVerifierRS256(keyset, exampleIssuer)
	parsedClaims, err := verifier.Verify(token)
	require.NoError(t, err)

	require.Equal(t, claims.Issuer, parsedClaims.Issuer)
	require.Equal(t, claims.Subject, parsedClaims.Subject)
	require.Equal(t, claims.Roles, parsedClaims.Roles)
	require.NotEmpty(t, parsedClaims.ID) // JTI should be set
}

func TestRS256VerifyFailsForWrongIssuer(t *testing.T) {
	_, privPEM := newTestKeyPEM(t)

	signer, err := jwtx.NewSignerRS256("k1", privPEM)
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims("alice123", "USER", "some-other-issuer", time.Minute, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	_, err = jwtx.NewVerifierRS256(keyset, exampleIssuer).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestRS256VerifyFailsForForeignKeyPair(t *testing.T) {
	_, signingPEM := newTestKeyPEM(t)
	_, foreignPEM := newTestKeyPEM(t)

	signer, err := jwtx.NewSignerRS256("k1", signingPEM)
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewSessionClaims("alice123", "USER", exampleIssuer, time.Minute, time.Now().UTC()))
	require.NoError(t, err)

	// Verifier only knows the foreign key under the same kid.
	foreign, err := jwtx.NewSignerRS256("k1", foreignPEM)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(foreign))

	_, err = jwtx.NewVerifierRS256(keyset, exampleIssuer).Verify(token)
	require.Error(t, err)
}

func TestRS256VerifyFailsForExpiredToken(t *testing.T) {
	_, privPEM := newTestKeyPEM(t)

	signer, err := jwtx.NewSignerRS256("k1", privPEM)
	require.NoError(t, err)

	// Issued in the past with a TTL that has already elapsed.
	issued := time.Now().UTC().Add(-1 * time.Hour)
	token, err := signer.Sign(jwtx.NewSessionClaims("alice123", "USER", exampleIssuer, time.Minute, issued))
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	_, err = jwtx.NewVerifierRS256(keyset, exampleIssuer).Verify(token)
	require.Error(t, err)
}

func TestRS256VerifyFailsForMalformedToken(t *testing.T) {
	_, privPEM := newTestKeyPEM(t)

	signer, err := jwtx.NewSignerRS256("k1", privPEM)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))
	verifier := jwtx.NewVerifierRS256(keyset, exampleIssuer)

	for _, garbage := range []string{"", "not.a.jwt", "a.b", "%%%%"} {
		_, err := verifier.Verify(garbage)
		require.Error(t, err, "token %q", garbage)
	}
}

func TestParseRSAPrivateKeyAcceptsBase64DER(t *testing.T) {
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(privKey)
	require.NoError(t, err)
	b64 := base64.StdEncoding.EncodeToString(der)

	parsed, err := jwtx.ParseRSAPrivateKey([]byte(b64))
	require.NoError(t, err)
	require.True(t, parsed.Equal(privKey))
}

func TestKeySetEmptyKidResolvesSingleKey(t *testing.T) {
	_, privPEM := newTestKeyPEM(t)

	signer, err := jwtx.NewSignerRS256("only-key", privPEM)
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	_, err = keyset.Get("")
	require.NoError(t, err)

	_, err = keyset.Get("missing")
	require.ErrorIs(t, err, jwtx.ErrNoKey)
}
