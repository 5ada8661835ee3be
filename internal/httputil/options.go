package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OptionsGet(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

func OptionsGetPost(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, POST")
	c.Status(http.StatusNoContent)
}

func OptionsGetPutPatchDelete(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, PUT, PATCH, DELETE")
	c.Status(http.StatusNoContent)
}
