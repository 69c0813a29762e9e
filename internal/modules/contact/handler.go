package contact

import (
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

// RegisterRoutes registers the public contact endpoint.
func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.POST("/contact", h.Submit)
}

// Submit handles the public contact form. Validation happens before
// any side effect; the submission succeeds once the row is durable,
// regardless of email delivery.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if fieldErrors := validator.Validate(&req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request fields", fieldErrors)
		return
	}

	msg, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "PERSISTENCE_ERROR", "Failed to save your message, please try again")
		return
	}

	response.Success(c, http.StatusCreated, SubmitResponse{
		MessageID: msg.ID,
		Message:   ConfirmationMessage,
	})
}
