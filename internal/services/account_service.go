package services

import (
	"fmt"
	"log"

	"farm-advisor/internal/models"
	"farm-advisor/internal/repository"

	"github.com/google/uuid"
)

// AccountService implements the admin account CRUD. Every operation works on
// a freshly loaded store snapshot and persists immediately after mutating.
type AccountService struct {
	userRepo repository.UserRepository
}

func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// List returns the current store snapshot.
func (s *AccountService) List() (map[string]models.Account, error) {
	return s.userRepo.Load()
}

// Add creates a farmer account. All three fields are required; when any is
// empty the operation is silently skipped. There is no duplicate check: an
// existing username is overwritten wholesale, with the role reset to farmer
// and a fresh identifier.
func (s *AccountService) Add(username, password, name string) (string, error) {
	if username == "" || password == "" || name == "" {
		return "", nil
	}

	accounts, err := s.userRepo.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load accounts: %w", err)
	}

	accounts[username] = models.Account{
		Username: username,
		Password: password,
		Name:     name,
		Role:     models.RoleFarmer,
		ID:       uuid.New().String(),
	}
	if err := s.userRepo.Save(accounts); err != nil {
		return "", fmt.Errorf("failed to save accounts: %w", err)
	}

	log.Printf("admin added account %s", username)
	return fmt.Sprintf("Added %s successfully!", name), nil
}

// Delete removes an account. Deleting the admin account or a username that
// does not exist is a no-op.
func (s *AccountService) Delete(username string) (string, error) {
	if username == models.AdminUsername {
		return "", nil
	}

	accounts, err := s.userRepo.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load accounts: %w", err)
	}
	if _, ok := accounts[username]; !ok {
		return "", nil
	}

	delete(accounts, username)
	if err := s.userRepo.Save(accounts); err != nil {
		return "", fmt.Errorf("failed to save accounts: %w", err)
	}

	log.Printf("admin deleted account %s", username)
	return fmt.Sprintf("Deleted %s successfully!", username), nil
}

// Edit updates only the display name of an existing account; a missing
// username is a no-op.
func (s *AccountService) Edit(username, newName string) (string, error) {
	accounts, err := s.userRepo.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load accounts: %w", err)
	}

	account, ok := accounts[username]
	if !ok {
		return "", nil
	}

	account.Name = newName
	accounts[username] = account
	if err := s.userRepo.Save(accounts); err != nil {
		return "", fmt.Errorf("failed to save accounts: %w", err)
	}

	log.Printf("admin renamed account %s", username)
	return fmt.Sprintf("Updated %s successfully!", username), nil
}
