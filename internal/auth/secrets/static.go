package secrets

import (
	"context"
	"fmt"
	"os"
)

// StaticSource reads key material from files on disk. Intended for local
// development where running Vault is overkill.
type StaticSource struct {
	PrivateKeyFile string
	PublicKeyFile  string
}

func (s *StaticSource) PrivateKey(_ context.Context) ([]byte, error) {
	return readKeyFile(s.PrivateKeyFile)
}

func (s *StaticSource) PublicKey(_ context.Context) ([]byte, error) {
	return readKeyFile(s.PublicKeyFile)
}

func readKeyFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("key file path not configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file %s: %w", path, err)
	}
	return data, nil
}
