package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"farm-advisor/internal/models"
	"farm-advisor/internal/services"
	"farm-advisor/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the login entry point and logout.
type AuthHandler struct {
	authService      *services.AuthService
	middleware       *Middleware
	cookieMaxAgeSecs int
}

func NewAuthHandler(authService *services.AuthService, middleware *Middleware, cookieMaxAgeSecs int) *AuthHandler {
	return &AuthHandler{
		authService:      authService,
		middleware:       middleware,
		cookieMaxAgeSecs: cookieMaxAgeSecs,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.LoginForm)
	router.POST("/", h.Login)
	router.GET("/logout", h.Logout)
}

// LoginForm is the login view. A caller that already holds a session goes
// straight to the dashboard.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	if h.middleware.CurrentAccount(c).Role != models.RoleGuest {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"view": "login"}))
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))

	account, token, err := h.authService.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, utils.CreateErrorResponse("INVALID_CREDENTIALS", "Invalid credentials!"))
			return
		}
		log.Printf("login failed for %s: %v", username, err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "Internal server error"))
		return
	}

	log.Printf("user %s logged in", account.Username)
	c.SetCookie(SessionCookie, token, h.cookieMaxAgeSecs, "/", "", false, true)
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{
		"message":  fmt.Sprintf("Welcome back, %s!", account.Name),
		"redirect": "/dashboard",
	}))
}

// Logout destroys the session unconditionally; logging out twice is fine.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(SessionCookie)
	h.authService.Logout(c.Request.Context(), token)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
