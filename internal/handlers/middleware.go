package handlers

import (
	"log"
	"net/http"

	"farm-advisor/internal/models"
	"farm-advisor/internal/services"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the signed session token.
const SessionCookie = "farm_session"

const accountContextKey = "current_account"

// Middleware gates routes on the caller's resolved identity.
type Middleware struct {
	authService *services.AuthService
}

func NewMiddleware(authService *services.AuthService) *Middleware {
	return &Middleware{authService: authService}
}

// CurrentAccount resolves the request's identity from the session cookie,
// caching it on the gin context. A request with no usable session resolves
// to the Guest identity.
func (m *Middleware) CurrentAccount(c *gin.Context) models.Account {
	if v, ok := c.Get(accountContextKey); ok {
		return v.(models.Account)
	}
	token, _ := c.Cookie(SessionCookie)
	account := m.authService.CurrentIdentity(c.Request.Context(), token)
	c.Set(accountContextKey, account)
	return account
}

// RequireSession redirects unauthenticated callers to the login entry point.
func (m *Middleware) RequireSession(c *gin.Context) {
	if m.CurrentAccount(c).Role == models.RoleGuest {
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return
	}
	c.Next()
}

// RequireAdmin additionally requires the admin role, sending everyone else
// back to the dashboard.
func (m *Middleware) RequireAdmin(c *gin.Context) {
	account := m.CurrentAccount(c)
	if account.Role == models.RoleGuest {
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return
	}
	if account.Role != models.RoleAdmin {
		log.Printf("admin access denied for %s (role %s)", account.Username, account.Role)
		c.Redirect(http.StatusFound, "/dashboard")
		c.Abort()
		return
	}
	c.Next()
}
