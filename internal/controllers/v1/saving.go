package v1

import (
	"net/http"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterSavingRoutes registers the routes for savings with
// the RouterGroup that is passed.
func RegisterSavingRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSavingList)
		r.GET("", GetSavings)
		r.POST("", CreateSavings)
	}

	// Saving with ID
	{
		r.OPTIONS("/:id", OptionsSavingDetail)
		r.GET("/:id", GetSaving)
		r.PATCH("/:id", UpdateSaving)
		r.DELETE("/:id", DeleteSaving)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/v1/savings [options]
func OptionsSavingList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings/{id} [options]
func OptionsSavingDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Saving{})
}

// @Summary		Create savings
// @Description	Creates new savings
// @Tags			Savings
// @Produce		json
// @Success		201		{object}	SavingCreateResponse
// @Failure		400		{object}	SavingCreateResponse
// @Failure		500		{object}	SavingCreateResponse
// @Param			savings	body		[]SavingEditable	true	"Savings"
// @Router			/v1/savings [post]
func CreateSavings(c *gin.Context) {
	var editables []SavingEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SavingCreateResponse{}

	for _, editable := range editables {
		saving := editable.model(currentUser(c))

		err = models.DB.Create(&saving).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSaving(c, saving)
		r.Data = append(r.Data, SavingResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get savings
// @Description	Returns a list of savings
// @Tags			Savings
// @Produce		json
// @Success		200	{object}	SavingListResponse
// @Failure		400	{object}	SavingListResponse
// @Failure		500	{object}	SavingListResponse
// @Router			/v1/savings [get]
// @Param			description	query	string	false	"Filter by description"
// @Param			month		query	string	false	"Filter by month"
// @Param			offset		query	uint	false	"The offset of the first saving returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of savings to return. Defaults to 50."
func GetSavings(c *gin.Context) {
	var filter SavingQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingListResponse{
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

	// Default to 50 savings and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var savings []models.Saving
	err = q.Find(&savings).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Saving, 0)
	for _, saving := range savings {
		data = append(data, newSaving(c, saving))
	}

	c.JSON(http.StatusOK, SavingListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get saving
// @Description	Returns a specific saving
// @Tags			Savings
// @Produce		json
// @Success		200	{object}	SavingResponse
// @Failure		400	{object}	SavingResponse
// @Failure		404	{object}	SavingResponse
// @Failure		500	{object}	SavingResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings/{id} [get]
func GetSaving(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingResponse{
			Error: &s,
		})
		return
	}

	var saving models.Saving
	err = models.DB.First(&saving, "id = ? AND user_id = ?", uri.ID, currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingResponse{
			Error: &s,
		})
		return
	}

	data := newSaving(c, saving)
	c.JSON(http.StatusOK, SavingResponse{Data: &data})
}

// @Summary		Update saving
// @Description	Update an existing saving. Only values to be updated need to be specified.
// @Tags			Savings
// @Accept			json
// @Produce		json
// @Success		200		{object}	SavingResponse
// @Failure		400		{object}	SavingResponse
// @Failure		404		{object}	SavingResponse
// @Failure		500		{object}	SavingResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			saving	body		SavingEditable	true	"Saving"
// @Router			/v1/savings/{id} [patch]
func UpdateSaving(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingResponse{
			Error: &s,
		})
		return
	}

	var saving models.Saving
	err = models.DB.First(&saving, "id = ? AND user_id = ?", uri.ID, currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SavingEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingResponse{
			Error: &s,
		})
		return
	}

	if len(updateFields) == 0 {
		s := httputil.ErrNoUpdateFields.Error()
		c.JSON(http.StatusBadRequest, SavingResponse{
			Error: &s,
		})
		return
	}

	var data SavingEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&saving).Select("", updateFields...).Updates(data.model(currentUser(c))).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingResponse{
			Error: &s,
		})
		return
	}

	r := newSaving(c, saving)
	c.JSON(http.StatusOK, SavingResponse{Data: &r})
}

// @Summary		Delete saving
// @Description	Deletes a saving
// @Tags			Savings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings/{id} [delete]
func DeleteSaving(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var saving models.Saving
	err = models.DB.First(&saving, "id = ? AND user_id = ?", uri.ID, currentUser(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&saving).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
