package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/crimescripting/flexsearch/internal/testing"
	"github.com/crimescripting/flexsearch/model"
	"github.com/crimescripting/flexsearch/services"
)

func setupTestRouter(t *testing.T, withModel bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	if withModel {
		SetupRoutes(router, testutil.CreateTestEngineWithModel(t))
	} else {
		SetupRoutes(router, testutil.CreateTestEngine(t))
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheckHandler(t *testing.T) {
	router := setupTestRouter(t, false)
	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestManageModelAndSearch(t *testing.T) {
	router := setupTestRouter(t, false)

	w := doJSON(t, router, http.MethodPut, "/model", testutil.SampleModel())
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/_search", SearchRequest{Query: "driver"})
	require.Equal(t, http.StatusOK, w.Code)

	var result services.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Hits, 1)
	assert.Equal(t, 0, result.Hits[0].CrimeScriptIdx)
	assert.Equal(t, 3, int(result.Hits[0].TotalScore))
	assert.NotEmpty(t, result.QueryID)
}

func TestSearchHandler_EmptyQuery(t *testing.T) {
	router := setupTestRouter(t, true)

	w := doJSON(t, router, http.MethodPost, "/_search", SearchRequest{Query: ""})
	require.Equal(t, http.StatusOK, w.Code)

	var result services.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Empty(t, result.Hits)
}

func TestSearchHandler_InvalidJSON(t *testing.T) {
	router := setupTestRouter(t, true)

	req := httptest.NewRequest(http.MethodPost, "/_search", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(ErrorCodeInvalidJSON))
}

func TestCaseSearchHandler(t *testing.T) {
	router := setupTestRouter(t, true)

	w := doJSON(t, router, http.MethodPost, "/_case_search", CaseSearchRequest{
		Filter: model.CrimeScriptFilter{ProductIDs: []model.ID{"p1"}},
		Text:   "a car was stolen",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result services.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Hits, 1)
}

func TestLocaleHandlers(t *testing.T) {
	router := setupTestRouter(t, true)

	w := doJSON(t, router, http.MethodGet, "/locale", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"locale":"en"`)

	w = doJSON(t, router, http.MethodPut, "/locale", LocaleRequest{Locale: "nl"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"locale":"nl"`)

	w = doJSON(t, router, http.MethodPut, "/locale", LocaleRequest{Locale: "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(ErrorCodeValidationFailed))
}

func TestGetModelHandler(t *testing.T) {
	router := setupTestRouter(t, true)

	w := doJSON(t, router, http.MethodGet, "/model", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dm model.DataModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dm))
	require.Len(t, dm.CrimeScripts, 1)
	assert.Equal(t, "Vehicle theft", dm.CrimeScripts[0].Label)
}

func TestGetStatsHandler(t *testing.T) {
	router := setupTestRouter(t, true)

	w := doJSON(t, router, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats services.IndexStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.CrimeScripts)
	assert.Greater(t, stats.Terms, 0)
}
