package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/defensedrill/auth/internal/auth/secrets"
	"github.com/defensedrill/auth/pkg/jwtx"
)

// InitAuthKeys loads the RSA signing key pair from the configured source and
// builds the signer plus the key set used for verification and JWKS.
//
// Sources:
//   - "vault": key material is read from a Vault KV v2 mount. The private
//     and public halves live at separate paths so consumers can be granted
//     the public half only.
//   - "static": key material is read from PEM (or base64 DER) files on disk.
//     Intended for local development.
//
// There is no key generation here. Keys are provisioned out of band so every
// replica signs with the same pair and restarts never invalidate tokens.
func InitAuthKeys(ctx context.Context, cfg Config, logger *slog.Logger) (jwtx.Signer, *jwtx.KeySet, error) {
	var source secrets.Source

	switch cfg.KeySource {
	case "vault":
		logger.Info("loading signing keys from vault",
			"mount", cfg.VaultMount,
			"private_path", cfg.VaultPrivatePath,
			"public_path", cfg.VaultPublicPath,
		)

		vs, err := secrets.NewVaultSource(secrets.VaultConfig{
			Address:     cfg.VaultAddress,
			Token:       cfg.VaultToken,
			Mount:       cfg.VaultMount,
			PrivatePath: cfg.VaultPrivatePath,
			PublicPath:  cfg.VaultPublicPath,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("vault key source: %w", err)
		}
		source = vs

	case "static":
		logger.Info("loading signing keys from files",
			"private", cfg.PrivateKeyFile,
			"public", cfg.PublicKeyFile,
		)
		source = &secrets.StaticSource{
			PrivateKeyFile: cfg.PrivateKeyFile,
			PublicKeyFile:  cfg.PublicKeyFile,
		}

	default:
		return nil, nil, fmt.Errorf("unknown key source %q", cfg.KeySource)
	}

	material, err := source.PrivateKey(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load private key: %w", err)
	}

	signer, err := jwtx.NewSignerRS256("", material)
	if err != nil {
		return nil, nil, fmt.Errorf("build signer: %w", err)
	}

	// The public half is what resource services fetch to verify tokens. A
	// pair that does not match would let the service mint tokens nobody can
	// verify, so a mismatch aborts startup.
	pubMaterial, err := source.PublicKey(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load public key: %w", err)
	}
	pub, err := jwtx.ParseRSAPublicKey(pubMaterial)
	if err != nil {
		return nil, nil, fmt.Errorf("parse public key: %w", err)
	}
	if !pub.Equal(signer.Public()) {
		return nil, nil, errors.New("public key does not match the signing key")
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, nil, fmt.Errorf("register signer: %w", err)
	}

	logger.Info("signing keys loaded", "kid", signer.KID(), "alg", signer.Alg())
	return signer, keys, nil
}
