package frauddetection

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/EddyKilonzo/CrediScore/pkg/common"
	"github.com/EddyKilonzo/CrediScore/pkg/validation"
)

// Handler handles HTTP requests for fraud detection
type Handler struct {
	service *Service
	name    string
	version string
}

// NewHandler creates a new fraud detection handler
func NewHandler(service *Service, serviceName, version string) *Handler {
	return &Handler{service: service, name: serviceName, version: version}
}

// DetectFraud scores a submitted review with its receipt data
func (h *Handler) DetectFraud(c *gin.Context) {
	var req DetectFraudRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			common.AppErrorResponse(c, common.NewBadRequestError(validation.NewValidationError(verrs).Error()))
			return
		}
		common.AppErrorResponse(c, common.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.service.DetectFraud(c.Request.Context(), &req)
	if err != nil {
		if appErr, ok := err.(*common.AppError); ok {
			common.AppErrorResponse(c, appErr)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "fraud detection failed")
		return
	}

	common.SuccessResponse(c, result)
}

// Root returns service metadata
func (h *Handler) Root(c *gin.Context) {
	common.SuccessResponse(c, gin.H{
		"message": "CrediScore Fraud Detection Service",
		"version": h.version,
		"endpoints": gin.H{
			"health":       "/health",
			"detect_fraud": "/detect-fraud",
		},
	})
}

// RegisterRoutes registers fraud detection routes. The health handler is
// injected so the binary can attach dependency checks to it.
func (h *Handler) RegisterRoutes(router *gin.Engine, health gin.HandlerFunc, detectFraudMiddleware ...gin.HandlerFunc) {
	router.GET("/", h.Root)
	router.GET("/health", health)
	router.POST("/detect-fraud", append(detectFraudMiddleware, h.DetectFraud)...)
}
