package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Folio-25-26J-118/portfolio-backend/internal/kv"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/domain"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/repository"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/service"
)

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := kv.NewRedisStore(client)
	logger := zap.NewNop()
	notifier := service.NopNotifier{}

	projects := service.NewProjectService(repository.NewCollection[domain.Project](store, repository.ProjectsKey), notifier, logger)
	experiences := service.NewExperienceService(repository.NewCollection[domain.Experience](store, repository.ExperiencesKey), notifier, logger)

	router := gin.New()
	Register(router.Group("/api/v1"), projects, experiences)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestProjectsAPI_CRUD(t *testing.T) {
	router := setupAPI(t)

	// Create.
	rr := doJSON(t, router, http.MethodPost, "/api/v1/projects", projectReq{
		Title:       "Alpha",
		Description: "desc",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created struct {
		OK      bool           `json:"ok"`
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.True(t, created.OK)
	require.NotZero(t, created.Project.ID)
	id := strconv.FormatInt(created.Project.ID, 10)

	// Read.
	rr = doJSON(t, router, http.MethodGet, "/api/v1/projects/"+id, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	// Update.
	rr = doJSON(t, router, http.MethodPut, "/api/v1/projects/"+id, projectReq{
		Title:       "Beta",
		Description: "new desc",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Beta")

	// List.
	rr = doJSON(t, router, http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Beta")

	// Delete.
	rr = doJSON(t, router, http.MethodDelete, "/api/v1/projects/"+id, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/projects/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProjectsAPI_EmptyFieldRejected(t *testing.T) {
	router := setupAPI(t)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/projects", projectReq{
		Title:       "   ",
		Description: "desc",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProjectsAPI_UpdateMissingIDIs404(t *testing.T) {
	router := setupAPI(t)

	rr := doJSON(t, router, http.MethodPut, "/api/v1/projects/12345", projectReq{
		Title:       "t",
		Description: "d",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProjectsAPI_BadIDIs400(t *testing.T) {
	router := setupAPI(t)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/projects/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestExperiencesAPI_CRUD(t *testing.T) {
	router := setupAPI(t)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/experiences", experienceReq{
		Company:     "Acme",
		Role:        "Analyst",
		Duration:    "2024",
		Description: "desc",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created struct {
		OK         bool              `json:"ok"`
		Experience domain.Experience `json:"experience"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.True(t, created.OK)
	id := strconv.FormatInt(created.Experience.ID, 10)

	rr = doJSON(t, router, http.MethodDelete, "/api/v1/experiences/"+id, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/experiences", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "Acme")
}

func TestExperiencesAPI_DeleteMissingIDIs404(t *testing.T) {
	router := setupAPI(t)

	rr := doJSON(t, router, http.MethodDelete, "/api/v1/experiences/999", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
