// Package budget serves the budget resource.
package budget

import (
	"errors"
	"net/http"

	"github.com/budget-ledger/backend/internal/httperrors"
	"github.com/budget-ledger/backend/internal/httputil"
	"github.com/budget-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsList)
		r.GET("", List)
		r.POST("", Create)
	}

	// Budgets of a user
	{
		r.OPTIONS("/user/:userId", OptionsUser)
		r.GET("/user/:userId", ListByUser)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsDetail)
		r.GET("/:id", Get)
		r.PUT("/:id", Update)
		r.PATCH("/:id", Update)
		r.DELETE("/:id", Delete)
	}
}

// notFound writes the response for a budget ID that does not exist.
func notFound(c *gin.Context) {
	httperrors.New(c, http.StatusNotFound, "Budget not found")
}

// bindBody binds the request body to data. If that fails, the error
// response is written and false is returned.
func bindBody(c *gin.Context, data *BudgetEditable) bool {
	return bodyOK(c, httputil.BindData(c, data))
}

// bodyOK writes the error response for err from reading the request body.
//
// Only bodies that are not JSON at all are rejected as bad requests.
// Values that cannot be converted to a budget field are server errors.
func bodyOK(c *gin.Context, err error) bool {
	if errors.Is(err, httputil.ErrInvalidBody) {
		httperrors.New(c, http.StatusBadRequest, err.Error())
		return false
	} else if err != nil {
		httperrors.Handler(c, err)
		return false
	}

	return true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/budgets [options]
func OptionsList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/budgets/user/{userId} [options]
func OptionsUser(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/budgets/{id} [options]
func OptionsDetail(c *gin.Context) {
	httputil.OptionsGetPutPatchDelete(c)
}

// @Summary		List budgets
// @Description	Returns all budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{array}		models.Budget
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/budgets [get]
func List(c *gin.Context) {
	budgets, err := models.FindBudgets(models.DB.WithContext(c.Request.Context()), models.Budget{})
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// @Summary		List budgets of a user
// @Description	Returns all budgets of the user. Responds with 404 if the user has no budgets.
// @Tags			Budgets
// @Produce		json
// @Success		200		{array}		models.Budget
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			userId	path		string	true	"ID of the user"
// @Router			/budgets/user/{userId} [get]
func ListByUser(c *gin.Context) {
	budgets, err := models.FindBudgets(models.DB.WithContext(c.Request.Context()), models.Budget{UserID: c.Param("userId")})
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	if len(budgets) == 0 {
		httperrors.New(c, http.StatusNotFound, "No budgets found for this user")
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// @Summary		Create budget
// @Description	Creates a new budget. userId, totalAmount, startDate and description are required.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.Budget
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/budgets [post]
func Create(c *gin.Context) {
	var data BudgetEditable
	if !bindBody(c, &data) {
		return
	}

	if !data.complete() {
		httperrors.New(c, http.StatusBadRequest, "All fields are required")
		return
	}

	budget := data.model()
	if err := budget.Save(models.DB.WithContext(c.Request.Context())); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	models.Budget
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/budgets/{id} [get]
func Get(c *gin.Context) {
	budget, err := models.FindBudgetByID(models.DB.WithContext(c.Request.Context()), c.Param("id"))
	if errors.Is(err, models.ErrResourceNotFound) {
		notFound(c)
		return
	} else if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// @Summary		Update budget
// @Description	Updates the fields of the budget that are set in the body and returns the updated budget.
// @Description	The updated budget must still have all required fields.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Budget
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			id		path		string			true	"ID formatted as string"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/budgets/{id} [put]
// @Router			/budgets/{id} [patch]
func Update(c *gin.Context) {
	fields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if !bodyOK(c, err) {
		return
	}

	var data BudgetEditable
	if !bindBody(c, &data) {
		return
	}

	budget, err := models.UpdateBudgetByID(models.DB.WithContext(c.Request.Context()), c.Param("id"), data.model(), fields)
	if errors.Is(err, models.ErrResourceNotFound) {
		notFound(c)
		return
	} else if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	MessageResponse
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/budgets/{id} [delete]
func Delete(c *gin.Context) {
	_, err := models.DeleteBudgetByID(models.DB.WithContext(c.Request.Context()), c.Param("id"))
	if errors.Is(err, models.ErrResourceNotFound) {
		notFound(c)
		return
	} else if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Budget deleted successfully"})
}
