// Package storage provides the durable key-value vaults the token service
// persists the bearer token into: a local file (default, one operator per
// machine) and Redis (shared kiosk deployments).
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

var _ ports.TokenVault = (*FileVault)(nil)

// FileVault stores values as a flat JSON object in a single file, the
// process-local equivalent of browser localStorage. The file is created with
// 0600 permissions because it holds a live credential.
type FileVault struct {
	path string
	key  string

	mu sync.Mutex
}

func NewFileVault(path, key string) *FileVault {
	return &FileVault{path: path, key: key}
}

func (v *FileVault) Load(_ context.Context) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	values, err := v.read()
	if err != nil {
		return "", err
	}
	raw, ok := values[v.key]
	if !ok || raw == "" {
		return "", domain.ErrNoToken
	}
	return raw, nil
}

func (v *FileVault) Store(_ context.Context, raw string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	values, err := v.read()
	if err != nil && !errors.Is(err, domain.ErrNoToken) {
		return err
	}
	if values == nil {
		values = map[string]string{}
	}
	values[v.key] = raw
	return v.write(values)
}

func (v *FileVault) Clear(_ context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	values, err := v.read()
	if err != nil {
		if errors.Is(err, domain.ErrNoToken) {
			return nil
		}
		return err
	}
	if _, ok := values[v.key]; !ok {
		return nil
	}
	delete(values, v.key)
	return v.write(values)
}

func (v *FileVault) read() (map[string]string, error) {
	data, err := os.ReadFile(v.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNoToken
		}
		return nil, fmt.Errorf("read vault: %w", err)
	}
	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse vault: %w", err)
	}
	return values, nil
}

// write replaces the vault atomically: a crash mid-write must not leave a
// truncated file behind.
func (v *FileVault) write(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode vault: %w", err)
	}

	dir := filepath.Dir(v.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".vault-*")
	if err != nil {
		return fmt.Errorf("create vault temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod vault: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write vault: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close vault: %w", err)
	}
	if err := os.Rename(tmp.Name(), v.path); err != nil {
		return fmt.Errorf("replace vault: %w", err)
	}
	return nil
}
