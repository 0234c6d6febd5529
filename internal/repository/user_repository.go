package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"farm-advisor/internal/models"
)

// ErrAccountNotFound is returned when a username does not exist in the store.
var ErrAccountNotFound = errors.New("account not found")

// UserRepository is the flat-file account store. Load always reads the
// document fresh from disk; Save rewrites it wholesale.
type UserRepository interface {
	Load() (map[string]models.Account, error)
	Save(accounts map[string]models.Account) error
	Get(username string) (models.Account, error)
}

type fileUserRepository struct {
	path string

	// mu serializes mutations so in-process writers cannot interleave the
	// read-modify-write cycle. Cross-process writers are not coordinated.
	mu sync.Mutex
}

func NewFileUserRepository(path string) UserRepository {
	return &fileUserRepository{path: path}
}

func (r *fileUserRepository) Load() (map[string]models.Account, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.SeedAccounts(), nil
		}
		return nil, fmt.Errorf("failed to read user store: %w", err)
	}

	var raw map[string]models.Account
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse user store: %w", err)
	}

	accounts := make(map[string]models.Account, len(raw))
	for username, account := range raw {
		account.Username = username
		accounts[username] = account
	}
	return accounts, nil
}

func (r *fileUserRepository) Save(accounts map[string]models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user store: %w", err)
	}

	// Write to a temp file in the same directory and rename over the
	// document, so readers never observe a partially written store.
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp store file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace user store: %w", err)
	}
	return nil
}

func (r *fileUserRepository) Get(username string) (models.Account, error) {
	accounts, err := r.Load()
	if err != nil {
		return models.Account{}, err
	}
	account, ok := accounts[username]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return account, nil
}
