package handlers

import (
	"net/http"
	"time"

	"farm-advisor/internal/services"
	"farm-advisor/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the landing page and the rainfall view.
type DashboardHandler struct {
	inferenceService services.IInferenceService
	rainfallService  *services.RainfallService
	middleware       *Middleware
}

func NewDashboardHandler(inferenceService services.IInferenceService, rainfallService *services.RainfallService, middleware *Middleware) *DashboardHandler {
	return &DashboardHandler{
		inferenceService: inferenceService,
		rainfallService:  rainfallService,
		middleware:       middleware,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/dashboard", h.middleware.RequireSession, h.Dashboard)
	router.GET("/rainfall", h.middleware.RequireSession, h.Rainfall)
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	account := h.middleware.CurrentAccount(c)
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{
		"user": gin.H{
			"username": account.Username,
			"name":     account.Name,
			"role":     account.Role,
		},
		"models_ready": h.inferenceService.Ready(),
	}))
}

// Rainfall is an informational view. When the rainfall regressor is present
// it includes this year's monthly estimates; otherwise only the static info.
func (h *DashboardHandler) Rainfall(c *gin.Context) {
	data := gin.H{
		"view":   "rainfall",
		"region": "Karnataka",
	}
	if h.rainfallService.Ready() {
		year := time.Now().Year()
		data["year"] = year
		data["estimates"] = h.rainfallService.EstimateYear(year)
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(data))
}
