package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"farm-advisor/internal/models"
	"farm-advisor/internal/repository"

	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned when the username or password is incorrect.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService resolves request identities and manages the login lifecycle.
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtService  *JWTService
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, jwtService *JWTService) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
	}
}

// Login checks the submitted credentials against the store. The comparison is
// an exact plaintext match; password hashing is deliberately out of scope.
// On success it creates a server-side session and returns the signed cookie
// token bound to it.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.Account, string, error) {
	account, err := s.userRepo.Get(username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return models.Account{}, "", ErrInvalidCredentials
		}
		return models.Account{}, "", fmt.Errorf("failed to load account: %w", err)
	}
	if account.Password != password {
		return models.Account{}, "", ErrInvalidCredentials
	}

	session := &models.UserSession{
		ID:        uuid.New().String(),
		Username:  account.Username,
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return models.Account{}, "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.jwtService.GenerateSessionToken(session.ID)
	if err != nil {
		return models.Account{}, "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return account, token, nil
}

// CurrentIdentity resolves a session token to its account. Any failure along
// the way (no token, bad signature, expired session, deleted account) yields
// the synthetic Guest identity rather than an error.
func (s *AuthService) CurrentIdentity(ctx context.Context, token string) models.Account {
	if token == "" {
		return models.GuestAccount()
	}

	sessionID, err := s.jwtService.VerifySessionToken(token)
	if err != nil {
		return models.GuestAccount()
	}

	session, err := s.sessionRepo.GetSession(ctx, sessionID)
	if err != nil {
		return models.GuestAccount()
	}

	account, err := s.userRepo.Get(session.Username)
	if err != nil {
		return models.GuestAccount()
	}
	return account
}

// Logout destroys the session bound to the token. It is idempotent: a missing
// or already-destroyed session is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	sessionID, err := s.jwtService.VerifySessionToken(token)
	if err != nil {
		return
	}
	if err := s.sessionRepo.DeleteSession(ctx, sessionID); err != nil {
		log.Printf("failed to delete session %s: %v", sessionID, err)
	}
}
