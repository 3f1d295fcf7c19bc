package v1

import (
	"fmt"
	"time"

	"github.com/budgetbook/backend/internal/models"
	bb_uuid "github.com/budgetbook/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyExpenseEditable represents all user configurable parameters
type DailyExpenseEditable struct {
	CategoryExpenseID *uuid.UUID      `json:"categoryExpenseId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category expense this daily expense counts towards. Can be null
	Description       string          `json:"description" example:"Groceries at the farmers market" default:""` // Description of the daily expense
	Amount            decimal.Decimal `json:"amount" example:"17.32"`                                           // The amount spent
	Date              time.Time       `json:"date" example:"2023-05-14T00:00:00Z"`                              // Date of the daily expense. Fixed once the expense is created
}

func (editable DailyExpenseEditable) model(userID uuid.UUID) models.DailyExpense {
	return models.DailyExpense{
		UserID:            userID,
		CategoryExpenseID: editable.CategoryExpenseID,
		Description:       editable.Description,
		Amount:            editable.Amount,
		Date:              editable.Date,
	}
}

type DailyExpenseLinks struct {
	Self            string  `json:"self" example:"https://example.com/api/v1/daily-expenses/3b1ea324-d438-4419-882a-2fc91d71772f"`        // The daily expense itself
	CategoryExpense *string `json:"categoryExpense" example:"https://example.com/api/v1/category-expenses/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // The category expense this daily expense counts towards, if any
}

type DailyExpense struct {
	models.DefaultModel
	DailyExpenseEditable
	Links DailyExpenseLinks `json:"links"`
}

func newDailyExpense(c *gin.Context, model models.DailyExpense) DailyExpense {
	url := c.GetString(string(models.DBContextURL))

	expense := DailyExpense{
		DefaultModel: model.DefaultModel,
		DailyExpenseEditable: DailyExpenseEditable{
			CategoryExpenseID: model.CategoryExpenseID,
			Description:       model.Description,
			Amount:            model.Amount,
			Date:              model.Date,
		},
		Links: DailyExpenseLinks{
			Self: fmt.Sprintf("%s/v1/daily-expenses/%s", url, model.ID),
		},
	}

	if model.CategoryExpenseID != nil {
		link := fmt.Sprintf("%s/v1/category-expenses/%s", url, model.CategoryExpenseID)
		expense.Links.CategoryExpense = &link
	}

	return expense
}

type DailyExpenseListResponse struct {
	Data       []DailyExpense `json:"data"`                                                          // List of daily expenses
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type DailyExpenseCreateResponse struct {
	Data  []DailyExpenseResponse `json:"data"`                                                          // List of the created daily expenses or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (d *DailyExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	d.Data = append(d.Data, DailyExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DailyExpenseResponse struct {
	Data  *DailyExpense `json:"data"`                                                          // Data for the daily expense
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DailyExpenseQueryFilter struct {
	CategoryExpenseID bb_uuid.UUID `json:"categoryExpense" form:"categoryExpense"`             // By ID of the category expense
	Description       string       `json:"description" form:"description" filterField:"false"` // By description
	Date              string       `json:"date" form:"date" filterField:"false"`               // By date
	Month             string       `json:"month" form:"month" filterField:"false"`             // By month
	Offset            uint         `json:"offset" form:"offset" filterField:"false"`           // The offset of the first daily expense returned. Defaults to 0.
	Limit             int          `json:"limit" form:"limit" filterField:"false"`             // Maximum number of daily expenses to return. Defaults to 50.
}

func (f DailyExpenseQueryFilter) model() (models.DailyExpense, error) {
	var id *uuid.UUID
	if f.CategoryExpenseID.UUID != uuid.Nil {
		id = &f.CategoryExpenseID.UUID
	}

	return models.DailyExpense{
		CategoryExpenseID: id,
	}, nil
}
