package subscription

import (
	"errors"
	"net/http"

	"venuebook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.POST("/subscriptions", h.CreateSubscription)
	admin.GET("/subscriptions", h.ListSubscriptions)
	admin.PUT("/subscriptions/:id/status", h.SetStatus)
}

func (h *Handler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sub, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid subscription dates")
		case errors.Is(err, ErrOwnerNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue owner not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create subscription")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"subscription": sub})
}

func (h *Handler) ListSubscriptions(c *gin.Context) {
	subs, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load subscriptions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"subscriptions": subs})
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be active, expired or cancelled")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Subscription not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update subscription status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Subscription status updated"})
}
