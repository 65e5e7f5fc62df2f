// Package version serves the build version of the budget backend.
package version

import (
	"net/http"

	"github.com/budget-ledger/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// buildVersion is the version reported to clients.
var buildVersion = "0.0.0"

type Response struct {
	Data Object `json:"data"` // Version information
}

type Object struct {
	Version string `json:"version" example:"1.1.0"` // Version of the running budget backend
}

// RegisterRoutes registers the version endpoint. version is
// reported by all responses.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	buildVersion = version

	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Backend version
// @Description	Returns the version of the budget backend that serves the request
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Data: Object{Version: buildVersion}})
}
