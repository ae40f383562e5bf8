package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"travelmap-api/internal/models"
)

const accountsFileMode fs.FileMode = 0o644

// FileAccountStore keeps all accounts in a single JSON array file.
// Writers inside one process are serialized; separate processes must not share the file.
type FileAccountStore struct {
	path string
	mu   sync.Mutex
}

// NewFileAccountStore creates a store backed by path. The file is created on first save.
func NewFileAccountStore(path string) *FileAccountStore {
	return &FileAccountStore{path: path}
}

// SaveAccounts replaces the file content with accounts and returns how many were written.
func (s *FileAccountStore) SaveAccounts(_ context.Context, accounts []models.Account) (int, error) {
	if accounts == nil {
		accounts = []models.Account{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(accounts); err != nil {
		return 0, fmt.Errorf("repository: failed to encode accounts: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".accounts-*.json")
	if err != nil {
		return 0, fmt.Errorf("repository: failed to create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	// CreateTemp uses 0600; the accounts file is a regular data file
	if err := tmp.Chmod(accountsFileMode); err != nil {
		_ = tmp.Close()
		return 0, fmt.Errorf("repository: failed to set accounts file mode: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return 0, fmt.Errorf("repository: failed to write accounts: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("repository: failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return 0, fmt.Errorf("repository: failed to replace accounts file: %w", err)
	}

	return len(accounts), nil
}

// LoadAccounts returns the stored accounts, or an empty slice when the file does not exist yet.
func (s *FileAccountStore) LoadAccounts(_ context.Context) ([]models.Account, error) {
	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	s.mu.Unlock()

	if errors.Is(err, fs.ErrNotExist) {
		return []models.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read accounts file: %w", err)
	}

	accounts := []models.Account{}
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("repository: accounts file is not a JSON array: %w", err)
	}
	return accounts, nil
}
