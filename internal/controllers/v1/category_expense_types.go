package v1

import (
	"fmt"

	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/types"
	bb_uuid "github.com/budgetbook/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryExpenseEditable represents all user configurable parameters
type CategoryExpenseEditable struct {
	ParentID        uuid.UUID       `json:"parentId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`    // ID of the parent category
	Description     string          `json:"description" example:"Groceries" default:""`                 // Name of the category expense
	ProjectedAmount decimal.Decimal `json:"projectedAmount" example:"180.47"`                           // The amount planned for this category in this month
	ActualAmount    decimal.Decimal `json:"actualAmount" example:"171.12"`                              // The amount spent. Only directly editable while the category expense is not selectable
	Month           types.Month     `json:"month" example:"2023-05-01T00:00:00.000000Z"`                // The month the category expense belongs to
}

func (editable CategoryExpenseEditable) model(userID uuid.UUID) models.CategoryExpense {
	return models.CategoryExpense{
		UserID:          userID,
		ParentID:        editable.ParentID,
		Description:     editable.Description,
		ProjectedAmount: editable.ProjectedAmount,
		ActualAmount:    editable.ActualAmount,
		Month:           editable.Month,
	}
}

type CategoryExpenseLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/category-expenses/3b1ea324-d438-4419-882a-2fc91d71772f"`                    // The category expense itself
	Parent        string `json:"parent" example:"https://example.com/api/v1/parent-categories/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`                  // The parent category
	DailyExpenses string `json:"dailyExpenses" example:"https://example.com/api/v1/daily-expenses?categoryExpense=3b1ea324-d438-4419-882a-2fc91d71772f"` // Daily expenses linking to this category expense
}

type CategoryExpense struct {
	models.DefaultModel
	CategoryExpenseEditable
	Selectable bool                 `json:"selectable" example:"true"` // Does the actual amount derive from linked daily expenses?
	Links      CategoryExpenseLinks `json:"links"`
}

func newCategoryExpense(c *gin.Context, model models.CategoryExpense) CategoryExpense {
	url := c.GetString(string(models.DBContextURL))

	return CategoryExpense{
		DefaultModel: model.DefaultModel,
		CategoryExpenseEditable: CategoryExpenseEditable{
			ParentID:        model.ParentID,
			Description:     model.Description,
			ProjectedAmount: model.ProjectedAmount,
			ActualAmount:    model.ActualAmount,
			Month:           model.Month,
		},
		Selectable: model.Selectable,
		Links: CategoryExpenseLinks{
			Self:          fmt.Sprintf("%s/v1/category-expenses/%s", url, model.ID),
			Parent:        fmt.Sprintf("%s/v1/parent-categories/%s", url, model.ParentID),
			DailyExpenses: fmt.Sprintf("%s/v1/daily-expenses?categoryExpense=%s", url, model.ID),
		},
	}
}

type CategoryExpenseListResponse struct {
	Data       []CategoryExpense `json:"data"`                                                          // List of category expenses
	Error      *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination       `json:"pagination"`                                                    // Pagination information
}

type CategoryExpenseCreateResponse struct {
	Data  []CategoryExpenseResponse `json:"data"`                                                          // List of the created category expenses or their respective error
	Error *string                   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *CategoryExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, CategoryExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryExpenseResponse struct {
	Data  *CategoryExpense `json:"data"`                                                          // Data for the category expense
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// CategoryExpenseSelectableEditable is the request body for switching a
// category expense between derived and directly editable actual amounts.
type CategoryExpenseSelectableEditable struct {
	Selectable *bool  `json:"selectable" binding:"required" example:"false"` // The new state
	Month      string `json:"month" example:"2023-05"`                       // The month whose daily expenses are detached. Defaults to the category expense's own month
}

// CategoryExpenseSelectableResponse returns the updated category expense
// and the number of daily expenses that were detached from it.
type CategoryExpenseSelectableResponse struct {
	Data     *CategoryExpense `json:"data"`                                                          // Data for the category expense
	Detached int64            `json:"detached" example:"3"`                                          // Number of daily expenses that were detached
	Error    *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryExpenseQueryFilter struct {
	ParentID    bb_uuid.UUID `json:"parent" form:"parent"`                               // By ID of the parent category
	Description string       `json:"description" form:"description" filterField:"false"` // By description
	Month       string       `json:"month" form:"month"`                                 // By month
	Selectable  bool         `json:"selectable" form:"selectable"`                       // By selectable state
	Offset      uint         `json:"offset" form:"offset" filterField:"false"`           // The offset of the first category expense returned. Defaults to 0.
	Limit       int          `json:"limit" form:"limit" filterField:"false"`             // Maximum number of category expenses to return. Defaults to 50.
}

func (f CategoryExpenseQueryFilter) model() (models.CategoryExpense, error) {
	var month types.Month
	if f.Month != "" {
		var err error
		month, err = types.ParseMonth(f.Month)
		if err != nil {
			return models.CategoryExpense{}, err
		}
	}

	return models.CategoryExpense{
		ParentID:   f.ParentID.UUID,
		Month:      month,
		Selectable: f.Selectable,
	}, nil
}
