// Package api exposes the search engine to the editor UI over HTTP. The
// handlers are thin glue: they validate the request shape and delegate to the
// engine; all search semantics live below the services boundary.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crimescripting/flexsearch/model"
	"github.com/crimescripting/flexsearch/services"
)

// maxModelSize bounds uploaded model snapshots (32 MiB).
const maxModelSize = 32 << 20

// API holds dependencies for API handlers, primarily the search engine.
type API struct {
	engine services.Engine
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.Engine) *API {
	return &API{engine: engine}
}

// SetupRoutes defines all the API routes for the search engine.
func SetupRoutes(router *gin.Engine, engine services.Engine) {
	apiHandler := NewAPI(engine)

	router.Use(CORSMiddleware())

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/stats", apiHandler.GetStatsHandler)

	modelRoutes := router.Group("/model")
	modelRoutes.Use(RequestSizeLimitMiddleware(maxModelSize))
	{
		modelRoutes.GET("", apiHandler.GetModelHandler)    // Current model snapshot
		modelRoutes.PUT("", apiHandler.ManageModelHandler) // Replace model, triggers index rebuild
	}

	localeRoutes := router.Group("/locale")
	{
		localeRoutes.GET("", apiHandler.GetLocaleHandler)
		localeRoutes.PUT("", apiHandler.SetLocaleHandler) // Switch stopword language, triggers rebuild
	}

	router.POST("/_search", apiHandler.SearchHandler)
	router.POST("/_case_search", apiHandler.CaseSearchHandler)
}

// SearchRequest is the body of a free-text search.
type SearchRequest struct {
	Query string `json:"query"`
}

// CaseSearchRequest is the body of a case search: a structured catalog filter
// plus a free-text case description.
type CaseSearchRequest struct {
	Filter model.CrimeScriptFilter `json:"filter"`
	Text   string                  `json:"text"`
}

// LocaleRequest is the body of a locale switch.
type LocaleRequest struct {
	Locale string `json:"locale"`
}

// HealthCheckHandler reports liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "crime-script flex search",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetStatsHandler returns statistics about the currently installed index.
func (api *API) GetStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.engine.Stats())
}

// GetModelHandler returns the current model snapshot.
func (api *API) GetModelHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.engine.Model())
}

// ManageModelHandler replaces the model wholesale. The engine stamps the
// snapshot, persists it, and rebuilds the index before this returns, so a
// subsequent search sees the new content.
func (api *API) ManageModelHandler(c *gin.Context) {
	var dm model.DataModel
	if err := c.ShouldBindJSON(&dm); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if err := api.engine.SetModel(dm); err != nil {
		SendPersistenceError(c, "model update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Model updated",
		"stats":   api.engine.Stats(),
	})
}

// GetLocaleHandler returns the active locale.
func (api *API) GetLocaleHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locale": api.engine.Locale()})
}

// SetLocaleHandler switches the active stopword language.
func (api *API) SetLocaleHandler(c *gin.Context) {
	var req LocaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if err := api.engine.SetLocale(req.Locale); err != nil {
		SendValidationError(c, "locale", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"locale": api.engine.Locale()})
}

// SearchHandler runs a free-text search. An empty query is not an error; it
// returns an empty hit list.
func (api *API) SearchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	result, err := api.engine.Search(req.Query)
	if err != nil {
		SendSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CaseSearchHandler matches a case description and catalog filter against the
// indexed crime scripts.
func (api *API) CaseSearchHandler(c *gin.Context) {
	var req CaseSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	result, err := api.engine.CaseSearch(req.Filter, req.Text)
	if err != nil {
		SendSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
