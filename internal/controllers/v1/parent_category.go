package v1

import (
	"net/http"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterParentCategoryRoutes registers the routes for parent categories with
// the RouterGroup that is passed.
func RegisterParentCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsParentCategoryList)
		r.GET("", GetParentCategories)
		r.POST("", CreateParentCategories)
	}

	// Parent category with ID
	{
		r.OPTIONS("/:id", OptionsParentCategoryDetail)
		r.GET("/:id", GetParentCategory)
		r.PATCH("/:id", UpdateParentCategory)
		r.DELETE("/:id", DeleteParentCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ParentCategories
// @Success		204
// @Router			/v1/parent-categories [options]
func OptionsParentCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ParentCategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/parent-categories/{id} [options]
func OptionsParentCategoryDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.ParentCategory{})
}

// @Summary		Create parent categories
// @Description	Creates new parent categories
// @Tags			ParentCategories
// @Produce		json
// @Success		201					{object}	ParentCategoryCreateResponse
// @Failure		400					{object}	ParentCategoryCreateResponse
// @Failure		500					{object}	ParentCategoryCreateResponse
// @Param			parentCategories	body		[]ParentCategoryEditable	true	"Parent categories"
// @Router			/v1/parent-categories [post]
func CreateParentCategories(c *gin.Context) {
	var editables []ParentCategoryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ParentCategoryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ParentCategoryCreateResponse{}

	for _, editable := range editables {
		parentCategory := editable.model(currentUser(c))

		err = models.DB.Create(&parentCategory).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newParentCategory(c, parentCategory)
		r.Data = append(r.Data, ParentCategoryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get parent categories
// @Description	Returns a list of parent categories
// @Tags			ParentCategories
// @Produce		json
// @Success		200	{object}	ParentCategoryListResponse
// @Failure		400	{object}	ParentCategoryListResponse
// @Failure		500	{object}	ParentCategoryListResponse
// @Router			/v1/parent-categories [get]
// @Param			description	query	string	false	"Filter by description"
// @Param			month		query	string	false	"Filter by month"
// @Param			offset		query	uint	false	"The offset of the first parent category returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of parent categories to return. Defaults to 50."
func GetParentCategories(c *gin.Context) {
	var filter ParentCategoryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParentCategoryListResponse{
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

	// Default to 50 parent categories and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var parentCategories []models.ParentCategory
	err = q.Find(&parentCategories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParentCategoryListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ParentCategoryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]ParentCategory, 0)
	for _, parentCategory := range parentCategories {
		data = append(data, newParentCategory(c, parentCategory))
	}

	c.JSON(http.StatusOK, ParentCategoryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get parent category
// @Description	Returns a specific parent category
// @Tags			ParentCategories
// @Produce		json
// @Success		200	{object}	ParentCategoryResponse
// @Failure		400	{object}	ParentCategoryResponse
// @Failure		404	{object}	ParentCategoryResponse
// @Failure		500	{object}	ParentCategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/parent-categories/{id} [get]
func GetParentCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParentCategoryResponse{
			Error: &s,
		})
		return
	}

	var parentCategory models.ParentCategory
	err = models.DB.First(&parentCategory, "id = ? AND user_id = ?", uri.ID, currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParentCategoryResponse{
			Error: &s,
		})
		return
	}

	data := newParentCategory(c, parentCategory)
	c.JSON(http.StatusOK, ParentCategoryResponse{Data: &data})
}

// @Summary		Update parent category
// @Description	Update an existing parent category. Only values to be updated need to be specified.
// @Tags			ParentCategories
// @Accept			json
// @Produce		json
// @Success		200				{object}	ParentCategoryResponse
// @Failure		400				{object}	ParentCategoryResponse
// @Failure		404				{object}	ParentCategoryResponse
// @Failure		500				{object}	ParentCategoryResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			parentCategory	body		ParentCategoryEditable	true	"Parent category"
// @Router			/v1/parent-categories/{id} [patch]
func UpdateParentCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParentCategoryResponse{
			Error: &s,
		})
		return
	}

	var parentCategory models.ParentCategory
	err = models.DB.First(&parentCategory, "id = ? AND user_id = ?", uri.ID, currentUser(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParentCategoryResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ParentCategoryEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParentCategoryResponse{
			Error: &s,
		})
		return
	}

	if len(updateFields) == 0 {
		s := httputil.ErrNoUpdateFields.Error()
		c.JSON(http.StatusBadRequest, ParentCategoryResponse{
			Error: &s,
		})
		return
	}

	var data ParentCategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParentCategoryResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&parentCategory).Select("", updateFields...).Updates(data.model(currentUser(c))).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParentCategoryResponse{
			Error: &s,
		})
		return
	}

	r := newParentCategory(c, parentCategory)
	c.JSON(http.StatusOK, ParentCategoryResponse{Data: &r})
}

// @Summary		Delete parent category
// @Description	Deletes a parent category and all category expenses nested under it
// @Tags			ParentCategories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/parent-categories/{id} [delete]
func DeleteParentCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteParentCategory(models.DB, uri.ID.UUID, currentUser(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
