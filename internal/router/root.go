package router

import (
	"net/http"

	"github.com/spendlog/backend/internal/httputil"
	"github.com/spendlog/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/docs/index.html"` // The API documentation
	Healthz string `json:"healthz" example:"https://example.com/healthz"`      // The health endpoint
	Version string `json:"version" example:"https://example.com/version"`      // The version endpoint
	Metrics string `json:"metrics" example:"https://example.com/metrics"`      // Prometheus metrics
	API     string `json:"api" example:"https://example.com/api"`              // The API itself
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			API:     url + "/api",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.2.0"` // The version of the backend
}

// @Summary		API version
// @Description	Returns the software version of the backend
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type APIResponse struct {
	Links APILinks `json:"links"`
}

type APILinks struct {
	Categories string `json:"categories" example:"https://example.com/api/categories"` // URL of the category endpoints
	Expenses   string `json:"expenses" example:"https://example.com/api/expenses"`     // URL of the expense endpoints
	Stats      string `json:"stats" example:"https://example.com/api/expenses/stats"`  // URL of the statistics endpoint
}

// @Summary		API endpoints
// @Description	Returns the links to all API endpoints
// @Tags			General
// @Success		200	{object}	APIResponse
// @Router			/api [get]
func GetAPI(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, APIResponse{
		Links: APILinks{
			Categories: url + "/api/categories",
			Expenses:   url + "/api/expenses",
			Stats:      url + "/api/expenses/stats",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/api [options]
func OptionsAPI(c *gin.Context) {
	httputil.OptionsGet(c)
}
