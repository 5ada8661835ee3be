// Package healthz implements the liveness endpoint.
package healthz

import (
	"net/http"

	"github.com/spendlog/backend/internal/httputil"
	"github.com/spendlog/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the health of the backend
// @Tags			General
// @Success		200
// @Failure		500	{object}	httpError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusOK)
}

type httpError struct {
	Error string `json:"error" example:"sql: database is closed"`
}
