package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"venuebook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/favorites", h.AddFavorite)
	protected.DELETE("/favorites/:venue_id", h.RemoveFavorite)
	protected.GET("/favorites/:user_id", h.ListFavorites)
}

func (h *Handler) AddFavorite(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Add(c.Request.Context(), c.GetInt64("user_id"), req.VenueID)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add favorite")
		return
	}

	msg := "Venue added to favorites"
	if !created {
		msg = "Venue is already in favorites"
	}
	response.Success(c, http.StatusOK, gin.H{"message": msg})
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	venueID, err := strconv.ParseInt(c.Param("venue_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue ID")
		return
	}

	if err := h.service.Remove(c.Request.Context(), c.GetInt64("user_id"), venueID); err != nil {
		if errors.Is(err, ErrNotFavorited) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue is not in favorites")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove favorite")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Venue removed from favorites"})
}

func (h *Handler) ListFavorites(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user ID")
		return
	}

	rows, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), userID)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cannot view another user's favorites")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load favorites")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"favorites": rows})
}
