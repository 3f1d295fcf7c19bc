package v1

import (
	"net/http"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterCategoryExpenseRoutes registers the routes for category expenses with
// the RouterGroup that is passed.
func RegisterCategoryExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryExpenseList)
		r.GET("", GetCategoryExpenses)
		r.POST("", CreateCategoryExpenses)
	}

	// Category expense with ID
	{
		r.OPTIONS("/:id", OptionsCategoryExpenseDetail)
		r.GET("/:id", GetCategoryExpense)
		r.PATCH("/:id", UpdateCategoryExpense)
		r.DELETE("/:id", DeleteCategoryExpense)
	}

	// Selectable state
	{
		r.OPTIONS("/:id/selectable", OptionsCategoryExpenseSelectable)
		r.PATCH("/:id/selectable", UpdateCategoryExpenseSelectable)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryExpenses
// @Success		204
// @Router			/v1/category-expenses [options]
func OptionsCategoryExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-expenses/{id} [options]
func OptionsCategoryExpenseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.CategoryExpense{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-expenses/{id}/selectable [options]
func OptionsCategoryExpenseSelectable(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.CategoryExpense{}, "id = ? AND user_id = ?", uri.ID, currentUser(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPatch(c)
}

// @Summary		Create category expenses
// @Description	Creates new category expenses. They start out selectable with an actual amount of zero.
// @Tags			CategoryExpenses
// @Produce		json
// @Success		201					{object}	CategoryExpenseCreateResponse
// @Failure		400					{object}	CategoryExpenseCreateResponse
// @Failure		404					{object}	CategoryExpenseCreateResponse
// @Failure		500					{object}	CategoryExpenseCreateResponse
// @Param			categoryExpenses	body		[]CategoryExpenseEditable	true	"Category expenses"
// @Router			/v1/category-expenses [post]
func CreateCategoryExpenses(c *gin.Context) {
	var editables []CategoryExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryExpenseCreateResponse{}

	for _, editable := range editables {
		categoryExpense := editable.model(currentUser(c))

		// New category expenses are always selectable, so the actual amount
		// starts at zero and fills up with daily expense writes
		categoryExpense.ActualAmount = decimal.Zero

		err = models.DB.Create(&categoryExpense).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategoryExpense(c, categoryExpense)
		r.Data = append(r.Data, CategoryExpenseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get category expenses
// @Description	Returns a list of category expenses
// @Tags			CategoryExpenses
// @Produce		json
// @Success		200	{object}	CategoryExpenseListResponse
// @Failure		400	{object}	CategoryExpenseListResponse
// @Failure		500	{object}	CategoryExpenseListResponse
// @Router			/v1/category-expenses [get]
// @Param			parent		query	string	false	"Filter by parent category ID"
// @Param			description	query	string	false	"Filter by description"
// @Param			month		query	string	false	"Filter by month"
// @Param			selectable	query	bool	false	"Is the actual amount derived from daily expenses?"
// @Param			offset		query	uint	false	"The offset of the first category expense returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of category expenses to return. Defaults to 50."
func GetCategoryExpenses(c *gin.Context) {
	var filter CategoryExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpenseListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("month DESC, description ASC").
		Where("user_id = ?", currentUser(c)).
		Where(&filterModel, queryFields...)

	q = descriptionFilter(q, setFields, filter.Description)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 category expenses and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var categoryExpenses []models.CategoryExpense
	err = q.Find(&categoryExpenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpenseListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryExpenseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]CategoryExpense, 0)
	for _, categoryExpense := range categoryExpenses {
		data = append(data, newCategoryExpense(c, categoryExpense))
	}

	c.JSON(http.StatusOK, CategoryExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category expense
// @Description	Returns a specific category expense
// @Tags			CategoryExpenses
// @Produce		json
// @Success		200	{object}	CategoryExpenseResponse
// @Failure		400	{object}	CategoryExpenseResponse
// @Failure		404	{object}	CategoryExpenseResponse
// @Failure		500	{object}	CategoryExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-expenses/{id} [get]
func GetCategoryExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpenseResponse{
			Error: &s,
		})
		return
	}

	var categoryExpense models.CategoryExpense
	err = models.DB.First(&categoryExpense, "id = ? AND user_id = ?", uri.ID, currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newCategoryExpense(c, categoryExpense)
	c.JSON(http.StatusOK, CategoryExpenseResponse{Data: &data})
}

// @Summary		Update category expense
// @Description	Update an existing category expense. Only values to be updated need to be specified. The actual amount is ignored while the category expense is selectable.
// @Tags			CategoryExpenses
// @Accept			json
// @Produce		json
// @Success		200				{object}	CategoryExpenseResponse
// @Failure		400				{object}	CategoryExpenseResponse
// @Failure		404				{object}	CategoryExpenseResponse
// @Failure		500				{object}	CategoryExpenseResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			categoryExpense	body		CategoryExpenseEditable	true	"Category expense"
// @Router			/v1/category-expenses/{id} [patch]
func UpdateCategoryExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpenseResponse{
			Error: &s,
		})
		return
	}

	var categoryExpense models.CategoryExpense
	err = models.DB.First(&categoryExpense, "id = ? AND user_id = ?", uri.ID, currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpenseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryExpenseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpenseResponse{
			Error: &s,
		})
		return
	}

	if len(updateFields) == 0 {
		s := httputil.ErrNoUpdateFields.Error()
		c.JSON(http.StatusBadRequest, CategoryExpenseResponse{
			Error: &s,
		})
		return
	}

	// While the actual amount is derived, direct edits to it are ignored
	if categoryExpense.Selectable {
		updateFields = slices.DeleteFunc(updateFields, func(field any) bool {
			return field == "ActualAmount"
		})
	}

	var data CategoryExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpenseResponse{
			Error: &s,
		})
		return
	}

	if len(updateFields) > 0 {
		err = models.DB.Model(&categoryExpense).Select("", updateFields...).Updates(data.model(currentUser(c))).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CategoryExpenseResponse{
				Error: &s,
			})
			return
		}
	}

	r := newCategoryExpense(c, categoryExpense)
	c.JSON(http.StatusOK, CategoryExpenseResponse{Data: &r})
}

// @Summary		Update selectable state
// @Description	Switches a category expense between derived and directly editable actual amounts. The actual amount is reset to zero. When derivation is turned off, daily expenses of the given month (defaulting to the category expense's own month) are detached from it.
// @Tags			CategoryExpenses
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryExpenseSelectableResponse
// @Failure		400			{object}	CategoryExpenseSelectableResponse
// @Failure		404			{object}	CategoryExpenseSelectableResponse
// @Failure		500			{object}	CategoryExpenseSelectableResponse
// @Param			id			path		URIID								true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			selectable	body		CategoryExpenseSelectableEditable	true	"Selectable state"
// @Router			/v1/category-expenses/{id}/selectable [patch]
func UpdateCategoryExpenseSelectable(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpenseSelectableResponse{
			Error: &s,
		})
		return
	}

	var categoryExpense models.CategoryExpense
	err = models.DB.First(&categoryExpense, "id = ? AND user_id = ?", uri.ID, currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpenseSelectableResponse{
			Error: &s,
		})
		return
	}

	var data CategoryExpenseSelectableEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpenseSelectableResponse{
			Error: &s,
		})
		return
	}

	month := categoryExpense.Month
	if data.Month != "" {
		month, err = types.ParseMonth(data.Month)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, CategoryExpenseSelectableResponse{
				Error: &s,
			})
			return
		}
	}

	categoryExpense, detached, err := models.SetCategoryExpenseSelectable(models.DB, categoryExpense.ID, currentUser(c), month, *data.Selectable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryExpenseSelectableResponse{
			Error: &s,
		})
		return
	}

	r := newCategoryExpense(c, categoryExpense)
	c.JSON(http.StatusOK, CategoryExpenseSelectableResponse{Data: &r, Detached: detached})
}

// @Summary		Delete category expense
// @Description	Deletes a category expense
// @Tags			CategoryExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-expenses/{id} [delete]
func DeleteCategoryExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var categoryExpense models.CategoryExpense
	err = models.DB.First(&categoryExpense, "id = ? AND user_id = ?", uri.ID, currentUser(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&categoryExpense).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
