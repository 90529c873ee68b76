package secrets

import (
	"context"
	"fmt"

	vault "github.com/hashicorp/vault/api"
)

// Default layout of signing key material in Vault's KV store.
const (
	DefaultMount       = "secret"
	DefaultPrivatePath = "security"
	DefaultPublicPath  = "public"

	privateKeyField = "jwtPrivateKey"
	publicKeyField  = "jwtPublicKey"
)

// VaultSource reads the signing key pair from a Vault KV v2 mount. The
// private and public halves live at separate paths so resource services can
// be granted read access to the public half only.
type VaultSource struct {
	client *vault.Client

	mount       string
	privatePath string
	publicPath  string
}

type VaultConfig struct {
	Address string
	Token   string

	// Mount and paths default to secret/security and secret/public.
	Mount       string
	PrivatePath string
	PublicPath  string
}

func NewVaultSource(cfg VaultConfig) (*VaultSource, error) {
	vcfg := vault.DefaultConfig()
	if cfg.Address != "" {
		vcfg.Address = cfg.Address
	}

	client, err := vault.NewClient(vcfg)
	if err != nil {
		return nil, fmt.Errorf("vault client: %w", err)
	}
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}

	s := &VaultSource{
		client:      client,
		mount:       cfg.Mount,
		privatePath: cfg.PrivatePath,
		publicPath:  cfg.PublicPath,
	}
	if s.mount == "" {
		s.mount = DefaultMount
	}
	if s.privatePath == "" {
		s.privatePath = DefaultPrivatePath
	}
	if s.publicPath == "" {
		s.publicPath = DefaultPublicPath
	}
	return s, nil
}

func (s *VaultSource) PrivateKey(ctx context.Context) ([]byte, error) {
	return s.readField(ctx, s.privatePath, privateKeyField)
}

func (s *VaultSource) PublicKey(ctx context.Context) ([]byte, error) {
	return s.readField(ctx, s.publicPath, publicKeyField)
}

func (s *VaultSource) readField(ctx context.Context, path, field string) ([]byte, error) {
	secret, err := s.client.KVv2(s.mount).Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("vault read %s/%s: %w", s.mount, path, err)
	}

	raw, ok := secret.Data[field]
	if !ok {
		return nil, fmt.Errorf("vault read %s/%s: field %q missing", s.mount, path, field)
	}
	val, ok := raw.(string)
	if !ok || val == "" {
		return nil, fmt.Errorf("vault read %s/%s: field %q empty", s.mount, path, field)
	}
	return []byte(val), nil
}
