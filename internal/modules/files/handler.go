package files

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio/internal/pkg/response"
	"portfolio/internal/pkg/validator"
)

// Handler exposes the authenticated file-manager API.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers file routes under the protected group.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	files := protected.Group("/files")
	{
		files.GET("", h.List)
		files.POST("", h.Upload)
		files.GET("/:id", h.Get)
		files.PATCH("/:id", h.Update)
		files.DELETE("/:id", h.Delete)
	}
}

// List returns all files owned by the calling identity.
func (h *Handler) List(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	list, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "PERSISTENCE_ERROR", "Failed to list files")
		return
	}

	response.Success(c, http.StatusOK, toFileResponses(list))
}

// Upload accepts a base64-encoded payload, stores the bytes and
// persists the metadata record.
func (h *Handler) Upload(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	var req UploadFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if fieldErrors := validator.Validate(&req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request fields", fieldErrors)
		return
	}

	file, err := h.service.Upload(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidFileData):
			response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		case errors.Is(err, ErrStorageWrite):
			response.Error(c, http.StatusInternalServerError, "STORAGE_WRITE_ERROR", "Failed to store file")
		default:
			response.Error(c, http.StatusInternalServerError, "PERSISTENCE_ERROR", "Failed to save file metadata")
		}
		return
	}

	response.Success(c, http.StatusCreated, toFileResponse(file))
}

// Get returns the file when it exists and is owned by the caller or
// publicly visible. A missing id yields a null result, not an error.
func (h *Handler) Get(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	id, ok := fileID(c)
	if !ok {
		return
	}

	file, err := h.service.Get(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, ErrPrivateFile) {
			response.Error(c, http.StatusForbidden, "UNAUTHORIZED", "You do not have access to this file")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PERSISTENCE_ERROR", "Failed to load file")
		return
	}
	if file == nil {
		response.Success(c, http.StatusOK, nil)
		return
	}

	response.Success(c, http.StatusOK, toFileResponse(file))
}

// Update applies the supplied fields only.
func (h *Handler) Update(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	id, ok := fileID(c)
	if !ok {
		return
	}

	var req UpdateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	file, err := h.service.Update(c.Request.Context(), id, userID, req)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toFileResponse(file))
}

// Delete removes the metadata record.
func (h *Handler) Delete(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	id, ok := fileID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		h.writeMutationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrFileNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "File not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "UNAUTHORIZED", "You do not own this file")
	default:
		response.Error(c, http.StatusInternalServerError, "PERSISTENCE_ERROR", "Operation failed")
	}
}

func fileID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid file ID")
		return 0, false
	}
	return id, true
}

func mustUserID(c *gin.Context) int64 {
	id, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		c.Abort()
		return 0
	}
	v, ok := id.(int64)
	if !ok || v == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid user id")
		c.Abort()
		return 0
	}
	return v
}
