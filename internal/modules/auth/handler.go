package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/pkg/response"
	"portfolio/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes registers endpoints reachable without a token.
func (h *Handler) RegisterPublicRoutes(public *gin.RouterGroup) {
	auth := public.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}
}

// RegisterProtectedRoutes registers endpoints behind the auth middleware.
func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/me", h.Me)
}

// Login syncs the externally authenticated identity and returns an API
// token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if fieldErrors := validator.Validate(&req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request fields", fieldErrors)
		return
	}

	user, token, result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "PERSISTENCE_ERROR", "Failed to sign in")
		return
	}

	status := http.StatusOK
	if result == ResultCreated {
		status = http.StatusCreated
	}

	response.Success(c, status, LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// Me returns the calling identity.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	user, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PERSISTENCE_ERROR", "Failed to load user")
		return
	}

	response.Success(c, http.StatusOK, toUserResponse(user))
}

// Logout is stateless on the API side; tokens simply expire. The
// endpoint exists so the frontend has a single call for session teardown.
func (h *Handler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}
