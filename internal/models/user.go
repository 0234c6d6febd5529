package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Account is one persisted user record. The username is the key of the
// store document, so it is not serialized inside the record itself.
type Account struct {
	Username string `json:"-"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	ID       string `json:"id"`
}

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleFarmer Role = "farmer"
	RoleGuest  Role = "guest"
)

// AdminUsername is the reserved account that can never be deleted.
const AdminUsername = "admin"

// SeedAccounts returns the accounts used when no store document exists yet.
func SeedAccounts() map[string]Account {
	return map[string]Account{
		"admin":   {Username: "admin", Password: "admin123", Name: "Admin User", Role: RoleAdmin, ID: "1"},
		"farmer1": {Username: "farmer1", Password: "1234", Name: "Shivanna", Role: RoleFarmer, ID: "2"},
		"farmer2": {Username: "farmer2", Password: "1234", Name: "Lakshmi", Role: RoleFarmer, ID: "3"},
	}
}

// GuestAccount is the synthetic identity for requests with no session.
func GuestAccount() Account {
	return Account{Name: "Guest", Role: RoleGuest}
}

// UserSession is the server-side binding of a session ID to a username.
type UserSession struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionClaims is the payload of the signed session cookie. Only the
// session ID travels in the cookie; the session state stays server-side.
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}
