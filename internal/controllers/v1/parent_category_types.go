package v1

import (
	"fmt"

	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParentCategoryEditable represents all user configurable parameters
type ParentCategoryEditable struct {
	Description string      `json:"description" example:"Household" default:""` // Name of the parent category
	Month       types.Month `json:"month" example:"2023-05-01T00:00:00.000000Z"` // The month the parent category belongs to
}

func (editable ParentCategoryEditable) model(userID uuid.UUID) models.ParentCategory {
	return models.ParentCategory{
		UserID:      userID,
		Description: editable.Description,
		Month:       editable.Month,
	}
}

type ParentCategoryLinks struct {
	Self             string `json:"self" example:"https://example.com/api/v1/parent-categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                 // The parent category itself
	CategoryExpenses string `json:"categoryExpenses" example:"https://example.com/api/v1/category-expenses?parent=3b1ea324-d438-4419-882a-2fc91d71772f"` // Category expenses nested under this parent category
}

type ParentCategory struct {
	models.DefaultModel
	ParentCategoryEditable
	Links ParentCategoryLinks `json:"links"`
}

func newParentCategory(c *gin.Context, model models.ParentCategory) ParentCategory {
	url := c.GetString(string(models.DBContextURL))

	return ParentCategory{
		DefaultModel: model.DefaultModel,
		ParentCategoryEditable: ParentCategoryEditable{
			Description: model.Description,
			Month:       model.Month,
		},
		Links: ParentCategoryLinks{
			Self:             fmt.Sprintf("%s/v1/parent-categories/%s", url, model.ID),
			CategoryExpenses: fmt.Sprintf("%s/v1/category-expenses?parent=%s", url, model.ID),
		},
	}
}

type ParentCategoryListResponse struct {
	Data       []ParentCategory `json:"data"`                                                          // List of parent categories
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}

type ParentCategoryCreateResponse struct {
	Data  []ParentCategoryResponse `json:"data"`                                                          // List of the created parent categories or their respective error
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (p *ParentCategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, ParentCategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ParentCategoryResponse struct {
	Data  *ParentCategory `json:"data"`                                                          // Data for the parent category
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ParentCategoryQueryFilter struct {
	Description string `json:"description" form:"description" filterField:"false"` // By description
	Month       string `json:"month" form:"month"`                                 // By month
	Offset      uint   `json:"offset" form:"offset" filterField:"false"`           // The offset of the first parent category returned. Defaults to 0.
	Limit       int    `json:"limit" form:"limit" filterField:"false"`             // Maximum number of parent categories to return. Defaults to 50.
}

func (f ParentCategoryQueryFilter) model() (models.ParentCategory, error) {
	var month types.Month
	if f.Month != "" {
		var err error
		month, err = types.ParseMonth(f.Month)
		if err != nil {
			return models.ParentCategory{}, err
		}
	}

	return models.ParentCategory{
		Month: month,
	}, nil
}
