package handlers

import (
	"log"
	"net/http"

	"farm-advisor/internal/models"
	"farm-advisor/internal/services"
	"farm-advisor/utils"

	"github.com/gin-gonic/gin"
)

// PredictHandler serves the crop recommendation form and submissions.
type PredictHandler struct {
	inferenceService services.IInferenceService
	middleware       *Middleware
}

func NewPredictHandler(inferenceService services.IInferenceService, middleware *Middleware) *PredictHandler {
	return &PredictHandler{
		inferenceService: inferenceService,
		middleware:       middleware,
	}
}

func (h *PredictHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/predict", h.middleware.RequireSession, h.PredictForm)
	router.POST("/predict", h.middleware.RequireSession, h.Predict)
}

func (h *PredictHandler) PredictForm(c *gin.Context) {
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{"view": "predict"}))
}

func (h *PredictHandler) Predict(c *gin.Context) {
	req := models.ParsePredictionRequest(c.PostForm)

	result, err := h.inferenceService.Submit(req)
	if err != nil {
		log.Printf("prediction failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("PREDICTION_ERROR", "Prediction error!"))
		return
	}
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(result))
}
