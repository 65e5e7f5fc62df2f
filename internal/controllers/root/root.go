// Package root serves the entrypoint of the budget API.
package root

import (
	"net/http"

	"github.com/budget-ledger/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"`
}

// Links point to all resources of the API. BudgetsByUser is a
// template, {userId} must be replaced by the client.
type Links struct {
	Budgets       string `json:"budgets" example:"https://example.com/api/budgets"`                     // All budgets
	BudgetsByUser string `json:"budgetsByUser" example:"https://example.com/api/budgets/user/{userId}"` // Budgets of one user
	Docs          string `json:"docs" example:"https://example.com/api/docs/index.html"`                // API documentation
	Healthz       string `json:"healthz" example:"https://example.com/api/healthz"`                     // Database health check
	Metrics       string `json:"metrics" example:"https://example.com/api/metrics"`                     // Prometheus metrics
	Version       string `json:"version" example:"https://example.com/api/version"`                     // Version of the backend
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the budget API, linking to all resources
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	base := c.GetString(string(httputil.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Budgets:       base + "/budgets",
			BudgetsByUser: base + "/budgets/user/{userId}",
			Docs:          base + "/docs/index.html",
			Healthz:       base + "/healthz",
			Metrics:       base + "/metrics",
			Version:       base + "/version",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
