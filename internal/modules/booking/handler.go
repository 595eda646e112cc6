package booking

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
	protected.POST("/bookings", h.CreateBooking)
	protected.GET("/bookings/:user_id", h.UserBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking dates")
		case errors.Is(err, ErrPriceMismatch):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Total price does not match the nightly rate")
		case errors.Is(err, ErrVenueNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found")
		case errors.Is(err, ErrDateConflict):
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Venue is already booked for the selected dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking_id": b.ID,
		"status":     b.Status,
	})
}

func (h *Handler) UserBookings(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user ID")
		return
	}

	rows, err := h.service.UserBookings(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), userID)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cannot view another user's bookings")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}
