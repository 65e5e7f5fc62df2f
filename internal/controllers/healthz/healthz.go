// Package healthz reports if the budget database can be reached.
package healthz

import (
	"net/http"

	"github.com/budget-ledger/backend/internal/httperrors"
	"github.com/budget-ledger/backend/internal/httputil"
	"github.com/budget-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the health check with the RouterGroup.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Database health
// @Description	Pings the budget database. Responds with 204 if it answers, with 500 and the error if it does not.
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
