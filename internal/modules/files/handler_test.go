package files

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"portfolio/internal/database"
	"portfolio/internal/domain"
	"portfolio/internal/middleware"
	jwtsvc "portfolio/internal/pkg/jwt"
	"portfolio/internal/repository"
)

func setupRouter(t *testing.T) (*gin.Engine, *jwtsvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.PortfolioFile{}))

	j := jwtsvc.New("test-secret", time.Hour)
	handler := NewHandler(NewService(repository.NewPortfolioFileRepository(db), &fakeStore{}, newTestLogger()))

	router := gin.New()
	protected := router.Group("/api/v1")
	protected.Use(middleware.Auth(j))
	handler.RegisterRoutes(protected)

	return router, j
}

func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestUploadHandlerCreatesFile(t *testing.T) {
	router, j := setupRouter(t)
	token, err := j.GenerateToken(7, "user")
	require.NoError(t, err)

	resp := performRequest(router, http.MethodPost, "/api/v1/files", uploadRequest("cv.pdf", "cv"), token)
	require.Equal(t, http.StatusCreated, resp.Code)

	var payload struct {
		Success bool         `json:"success"`
		Data    FileResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.True(t, payload.Success)
	require.Equal(t, "cv.pdf", payload.Data.FileName)
	require.Equal(t, int64(7), payload.Data.UserID)
	require.True(t, payload.Data.IsPublic)
	require.NotEmpty(t, payload.Data.StorageURL)
}

func TestUploadHandlerRejectsMissingFields(t *testing.T) {
	router, j := setupRouter(t)
	token, err := j.GenerateToken(7, "user")
	require.NoError(t, err)

	req := uploadRequest("", "cv")
	resp := performRequest(router, http.MethodPost, "/api/v1/files", req, token)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	badType := uploadRequest("cv.pdf", "spreadsheet")
	resp = performRequest(router, http.MethodPost, "/api/v1/files", badType, token)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	badSize := uploadRequest("cv.pdf", "cv")
	badSize.FileSize = 0
	resp = performRequest(router, http.MethodPost, "/api/v1/files", badSize, token)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestFilesRequireIdentity(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performRequest(router, http.MethodGet, "/api/v1/files", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = performRequest(router, http.MethodPost, "/api/v1/files", uploadRequest("cv.pdf", "cv"), "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestGetUnknownFileReturnsNullData(t *testing.T) {
	router, j := setupRouter(t)
	token, err := j.GenerateToken(7, "user")
	require.NoError(t, err)

	resp := performRequest(router, http.MethodGet, "/api/v1/files/999", nil, token)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.True(t, payload.Success)
	require.Equal(t, "null", string(payload.Data))
}

func TestDeleteUnknownFileIsNotFound(t *testing.T) {
	router, j := setupRouter(t)
	token, err := j.GenerateToken(7, "user")
	require.NoError(t, err)

	resp := performRequest(router, http.MethodDelete, "/api/v1/files/999", nil, token)
	require.Equal(t, http.StatusNotFound, resp.Code)

	resp = performRequest(router, http.MethodPatch, "/api/v1/files/999", UpdateFileRequest{}, token)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestNonOwnerMutationsAreForbidden(t *testing.T) {
	router, j := setupRouter(t)
	owner, err := j.GenerateToken(7, "user")
	require.NoError(t, err)
	other, err := j.GenerateToken(8, "user")
	require.NoError(t, err)

	resp := performRequest(router, http.MethodPost, "/api/v1/files", uploadRequest("cv.pdf", "cv"), owner)
	require.Equal(t, http.StatusCreated, resp.Code)

	var payload struct {
		Data FileResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	id := payload.Data.ID

	// Public file: readable by anyone, mutable by the owner only.
	resp = performRequest(router, http.MethodGet, "/api/v1/files/"+itoa(id), nil, other)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodDelete, "/api/v1/files/"+itoa(id), nil, other)
	require.Equal(t, http.StatusForbidden, resp.Code)

	name := "Stolen"
	resp = performRequest(router, http.MethodPatch, "/api/v1/files/"+itoa(id), UpdateFileRequest{DisplayName: &name}, other)
	require.Equal(t, http.StatusForbidden, resp.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
