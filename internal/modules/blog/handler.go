package blog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the public, read-only blog endpoints.
func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	posts := public.Group("/blog")
	{
		posts.GET("", h.List)
		posts.GET("/category/:category", h.GetByCategory)
		posts.GET("/:slug", h.GetBySlug)
	}
}

func (h *Handler) List(c *gin.Context) {
	limit := queryInt(c, "limit", defaultLimit)
	offset := queryInt(c, "offset", 0)

	posts, total := h.service.List(c.Request.Context(), limit, offset)
	response.Success(c, http.StatusOK, ListResponse{
		Posts: toPostResponses(posts),
		Total: total,
	})
}

// GetBySlug answers 200 with null data for an unknown slug; the
// asymmetry with the file API is intentional.
func (h *Handler) GetBySlug(c *gin.Context) {
	post := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if post == nil {
		response.Success(c, http.StatusOK, nil)
		return
	}
	response.Success(c, http.StatusOK, toPostResponse(post))
}

func (h *Handler) GetByCategory(c *gin.Context) {
	limit := queryInt(c, "limit", defaultLimit)
	posts := h.service.GetByCategory(c.Request.Context(), c.Param("category"), limit)
	response.Success(c, http.StatusOK, toPostResponses(posts))
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
