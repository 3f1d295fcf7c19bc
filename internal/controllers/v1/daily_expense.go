package v1

import (
	"net/http"
	"time"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterDailyExpenseRoutes registers the routes for daily expenses with
// the RouterGroup that is passed.
func RegisterDailyExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDailyExpenseList)
		r.GET("", GetDailyExpenses)
		r.POST("", CreateDailyExpenses)
	}

	// Daily expense with ID
	{
		r.OPTIONS("/:id", OptionsDailyExpenseDetail)
		r.GET("/:id", GetDailyExpense)
		r.PATCH("/:id", UpdateDailyExpense)
		r.DELETE("/:id", DeleteDailyExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			DailyExpenses
// @Success		204
// @Router			/v1/daily-expenses [options]
func OptionsDailyExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			DailyExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/daily-expenses/{id} [options]
func OptionsDailyExpenseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.DailyExpense{})
}

// @Summary		Create daily expenses
// @Description	Creates new daily expenses. The amount of an expense linking to a selectable category expense is added to its actual amount.
// @Tags			DailyExpenses
// @Produce		json
// @Success		201				{object}	DailyExpenseCreateResponse
// @Failure		400				{object}	DailyExpenseCreateResponse
// @Failure		404				{object}	DailyExpenseCreateResponse
// @Failure		500				{object}	DailyExpenseCreateResponse
// @Param			dailyExpenses	body		[]DailyExpenseEditable	true	"Daily expenses"
// @Router			/v1/daily-expenses [post]
func CreateDailyExpenses(c *gin.Context) {
	var editables []DailyExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DailyExpenseCreateResponse{}

	for _, editable := range editables {
		dailyExpense := editable.model(currentUser(c))

		err = models.CreateDailyExpense(models.DB, &dailyExpense)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDailyExpense(c, dailyExpense)
		r.Data = append(r.Data, DailyExpenseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get daily expenses
// @Description	Returns a list of daily expenses
// @Tags			DailyExpenses
// @Produce		json
// @Success		200	{object}	DailyExpenseListResponse
// @Failure		400	{object}	DailyExpenseListResponse
// @Failure		500	{object}	DailyExpenseListResponse
// @Router			/v1/daily-expenses [get]
// @Param			categoryExpense	query	string	false	"Filter by category expense ID"
// @Param			description		query	string	false	"Filter by description"
// @Param			date			query	string	false	"Filter by date in YYYY-MM-DD format"
// @Param			month			query	string	false	"Filter by month"
// @Param			offset			query	uint	false	"The offset of the first daily expense returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of daily expenses to return. Defaults to 50."
func GetDailyExpenses(c *gin.Context) {
	var filter DailyExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailyExpenseListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("date DESC").
		Where("user_id = ?", currentUser(c)).
		Where(&filterModel, queryFields...)

	q = descriptionFilter(q, setFields, filter.Description)

	if filter.Date != "" {
		date, err := time.Parse("2006-01-02", filter.Date)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, DailyExpenseListResponse{
				Error: &s,
			})
			return
		}
		q = q.Where("date >= ? AND date < ?", date, date.AddDate(0, 0, 1))
	}

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, DailyExpenseListResponse{
				Error: &s,
			})
			return
		}
		q = q.Where("date >= ? AND date < ?", time.Time(month), time.Time(month.AddDate(0, 1)))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 daily expenses and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var dailyExpenses []models.DailyExpense
	err = q.Find(&dailyExpenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailyExpenseListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailyExpenseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]DailyExpense, 0)
	for _, dailyExpense := range dailyExpenses {
		data = append(data, newDailyExpense(c, dailyExpense))
	}

	c.JSON(http.StatusOK, DailyExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get daily expense
// @Description	Returns a specific daily expense
// @Tags			DailyExpenses
// @Produce		json
// @Success		200	{object}	DailyExpenseResponse
// @Failure		400	{object}	DailyExpenseResponse
// @Failure		404	{object}	DailyExpenseResponse
// @Failure		500	{object}	DailyExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/daily-expenses/{id} [get]
func GetDailyExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailyExpenseResponse{
			Error: &s,
		})
		return
	}

	var dailyExpense models.DailyExpense
	err = models.DB.First(&dailyExpense, "id = ? AND user_id = ?", uri.ID, currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailyExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newDailyExpense(c, dailyExpense)
	c.JSON(http.StatusOK, DailyExpenseResponse{Data: &data})
}

// @Summary		Update daily expense
// @Description	Update an existing daily expense. Only values to be updated need to be specified. Changes to the amount or the category link are mirrored into the affected category expenses.
// @Tags			DailyExpenses
// @Accept			json
// @Produce		json
// @Success		200				{object}	DailyExpenseResponse
// @Failure		400				{object}	DailyExpenseResponse
// @Failure		404				{object}	DailyExpenseResponse
// @Failure		500				{object}	DailyExpenseResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			dailyExpense	body		DailyExpenseEditable	true	"Daily expense"
// @Router			/v1/daily-expenses/{id} [patch]
func UpdateDailyExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailyExpenseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DailyExpenseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailyExpenseResponse{
			Error: &s,
		})
		return
	}

	// The date is fixed at creation, edits to it are ignored
	updateFields = slices.DeleteFunc(updateFields, func(field any) bool {
		return field == "Date"
	})

	if len(updateFields) == 0 {
		s := httputil.ErrNoUpdateFields.Error()
		c.JSON(http.StatusBadRequest, DailyExpenseResponse{
			Error: &s,
		})
		return
	}

	var data DailyExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailyExpenseResponse{
			Error: &s,
		})
		return
	}

	dailyExpense, err := models.UpdateDailyExpense(models.DB, uri.ID.UUID, currentUser(c), data.model(currentUser(c)), updateFields)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DailyExpenseResponse{
			Error: &s,
		})
		return
	}

	r := newDailyExpense(c, dailyExpense)
	c.JSON(http.StatusOK, DailyExpenseResponse{Data: &r})
}

// @Summary		Delete daily expense
// @Description	Deletes a daily expense. Its amount is subtracted from the linked category expense.
// @Tags			DailyExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/daily-expenses/{id} [delete]
func DeleteDailyExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteDailyExpense(models.DB, uri.ID.UUID, currentUser(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
