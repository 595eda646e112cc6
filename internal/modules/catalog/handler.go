package catalog

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

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/venues", h.Search)
	api.GET("/venues/:id", h.GetVenue)
}

// RegisterOwnerRoutes expects the group to be gated to venue_owner.
func (h *Handler) RegisterOwnerRoutes(owner *gin.RouterGroup) {
	owner.POST("/venues", h.CreateVenue)
	owner.GET("/owner/venues", h.OwnerVenues)
	owner.GET("/owner/stats", h.OwnerStats)
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	venues, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidType) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown venue type")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search venues")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"venues": venues})
}

func (h *Handler) GetVenue(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue ID")
		return
	}

	venue, images, err := h.service.GetVenue(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load venue")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"venue":  venue,
		"images": images,
	})
}

func (h *Handler) CreateVenue(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	venue, err := h.service.CreateVenue(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidType):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid venue fields")
		case errors.Is(err, ErrNotAnOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "No venue owner profile for this account")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create venue")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"venue_id": venue.ID,
		"status":   venue.Status,
	})
}

func (h *Handler) OwnerVenues(c *gin.Context) {
	venues, err := h.service.OwnerVenues(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotAnOwner) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "No venue owner profile for this account")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load venues")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"venues": venues})
}

func (h *Handler) OwnerStats(c *gin.Context) {
	stats, err := h.service.OwnerStats(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotAnOwner) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "No venue owner profile for this account")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
