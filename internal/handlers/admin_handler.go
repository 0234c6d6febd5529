package handlers

import (
	"log"
	"net/http"

	"farm-advisor/internal/services"
	"farm-advisor/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the account management view, admin role only.
type AdminHandler struct {
	accountService *services.AccountService
	middleware     *Middleware
}

func NewAdminHandler(accountService *services.AccountService, middleware *Middleware) *AdminHandler {
	return &AdminHandler{
		accountService: accountService,
		middleware:     middleware,
	}
}

func (h *AdminHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/admin", h.middleware.RequireAdmin, h.AdminPanel)
	router.POST("/admin", h.middleware.RequireAdmin, h.AdminAction)
}

func (h *AdminHandler) AdminPanel(c *gin.Context) {
	h.renderPanel(c, "")
}

// AdminAction applies one account mutation and re-renders the refreshed
// account list. Unknown actions and no-op mutations fall through to the
// plain listing.
func (h *AdminHandler) AdminAction(c *gin.Context) {
	var (
		message string
		err     error
	)

	switch c.PostForm("action") {
	case "add":
		message, err = h.accountService.Add(
			c.PostForm("new_username"),
			c.PostForm("new_password"),
			c.PostForm("new_name"),
		)
	case "delete":
		message, err = h.accountService.Delete(c.PostForm("username"))
	case "edit":
		message, err = h.accountService.Edit(c.PostForm("username"), c.PostForm("edit_name"))
	}

	if err != nil {
		log.Printf("admin action failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "Internal server error"))
		return
	}
	h.renderPanel(c, message)
}

func (h *AdminHandler) renderPanel(c *gin.Context, message string) {
	accounts, err := h.accountService.List()
	if err != nil {
		log.Printf("failed to list accounts: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", "Internal server error"))
		return
	}

	data := gin.H{"users": accounts}
	if message != "" {
		data["message"] = message
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(data))
}
