package auth

import (
	"errors"
	"net/http"

	"venuebook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/register-owner", h.RegisterOwner)
		authGroup.POST("/verify-otp", h.VerifyOtp)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/users/me", h.GetMe)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.registerError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user_id": res.UserID,
		"otp":     res.Otp,
	})
}

func (h *Handler) RegisterOwner(c *gin.Context) {
	var req RegisterOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.RegisterOwner(c.Request.Context(), req)
	if err != nil {
		h.registerError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user_id": res.UserID,
		"otp":     res.Otp,
	})
}

func (h *Handler) registerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "All fields are required")
	case errors.Is(err, ErrAlreadyRegistered):
		response.Error(c, http.StatusBadRequest, "CONFLICT", "Email or phone is already registered")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
	}
}

func (h *Handler) VerifyOtp(c *gin.Context) {
	var req VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.VerifyOtp(c.Request.Context(), req.UserID, req.Otp); err != nil {
		if errors.Is(err, ErrInvalidOtp) {
			response.Error(c, http.StatusBadRequest, "INVALID_OTP", "Invalid or expired OTP code")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify OTP")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Account verified successfully",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
		case errors.Is(err, ErrNotVerified):
			response.Error(c, http.StatusForbidden, "ACCOUNT_NOT_VERIFIED", "Account is not verified yet")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  res.User,
		"token": res.Token,
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64("user_id")

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
