package controllers

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/spendlog/backend/internal/httputil"
	"github.com/spendlog/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Statistics
	{
		r.OPTIONS("/stats", OptionsExpenseStats)
		r.GET("/stats", GetExpenseStats)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PUT("/:id", UpdateExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/api/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/api/expenses/stats [options]
func OptionsExpenseStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the expense"
// @Router			/api/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Expense{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutPatchDelete(c)
}

// @Summary		Create expense
// @Description	Creates a new expense. An unknown category_id is ignored and the expense is created without a category.
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/api/expenses [post]
func CreateExpense(c *gin.Context) {
	bodyFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var editable ExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	err = checkRequiredExpenseFields(bodyFields, editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{
			Error: &e,
		})
		return
	}

	// An unknown category reference is dropped, the expense is created
	// without a category
	editable.CategoryID, err = resolveCategory(editable.CategoryID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	expense := editable.model()

	err = models.DB.Create(&expense).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	data, err := newExpense(models.DB, expense)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &data})
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/api/expenses [get]
func GetExpenses(c *gin.Context) {
	var expenses []models.Expense
	err := models.DB.Order("id ASC").Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Expense, 0)
	for _, expense := range expenses {
		apiResource, err := newExpense(models.DB, expense)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ExpenseListResponse{
				Error: &e,
			})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: data})
}

// @Summary		Get statistics
// @Description	Returns the total spend and the spend grouped by category
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseStatsResponse
// @Failure		500	{object}	ExpenseStatsResponse
// @Router			/api/expenses/stats [get]
func GetExpenseStats(c *gin.Context) {
	total, err := models.ExpenseStatsTotal(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseStatsResponse{
			Error: &e,
		})
		return
	}

	byCategory, err := models.ExpenseStatsByCategory(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseStatsResponse{
			Error: &e,
		})
		return
	}

	data := ExpenseStats{
		Total:      total,
		ByCategory: byCategory,
	}

	c.JSON(http.StatusOK, ExpenseStatsResponse{Data: &data})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		uint64	true	"ID of the expense"
// @Router			/api/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	data, err := newExpense(models.DB, expense)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Update expense
// @Description	Update an existing expense. Only values to be updated need to be specified. An unknown category_id leaves the current category untouched.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		uint64			true	"ID of the expense"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/api/expenses/{id} [put]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	var data ExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	// An unknown category reference leaves the current category untouched
	if slices.Contains(updateFields, any("CategoryID")) && data.CategoryID != nil {
		resolved, err := resolveCategory(data.CategoryID)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ExpenseResponse{
				Error: &e,
			})
			return
		}

		if resolved == nil {
			updateFields = slices.DeleteFunc(updateFields, func(field any) bool {
				return field == any("CategoryID")
			})
		}
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	r, err := newExpense(models.DB, expense)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &r})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the expense"
// @Router			/api/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// checkRequiredExpenseFields verifies that all required fields for an
// expense are present in the request body.
func checkRequiredExpenseFields(bodyFields []any, editable ExpenseEditable) error {
	if !slices.Contains(bodyFields, any("Description")) || strings.TrimSpace(editable.Description) == "" {
		return errDescriptionMissing
	}

	if !slices.Contains(bodyFields, any("Amount")) {
		return errAmountMissing
	}

	if !slices.Contains(bodyFields, any("Date")) {
		return errDateMissing
	}

	return nil
}

// resolveCategory verifies that a category reference points to an
// existing category. Unknown references are dropped, not errors.
func resolveCategory(id *uint64) (*uint64, error) {
	if id == nil {
		return nil, nil
	}

	var category models.Category
	err := models.DB.First(&category, *id).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return id, nil
}
