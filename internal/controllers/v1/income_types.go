package v1

import (
	"fmt"

	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	Description     string          `json:"description" example:"Salary" default:""`     // Description of the income
	ProjectedAmount decimal.Decimal `json:"projectedAmount" example:"2500"`              // The amount expected for this month
	ActualAmount    decimal.Decimal `json:"actualAmount" example:"2517.23"`              // The amount actually received
	Month           types.Month     `json:"month" example:"2023-05-01T00:00:00.000000Z"` // The month the income belongs to
}

func (editable IncomeEditable) model(userID uuid.UUID) models.Income {
	return models.Income{
		UserID:          userID,
		Description:     editable.Description,
		ProjectedAmount: editable.ProjectedAmount,
		ActualAmount:    editable.ActualAmount,
		Month:           editable.Month,
	}
}

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/incomes/3b1ea324-d438-4419-882a-2fc91d71772f"` // The income itself
}

type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.DBContextURL))

	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			Description:     model.Description,
			ProjectedAmount: model.ProjectedAmount,
			ActualAmount:    model.ActualAmount,
			Month:           model.Month,
		},
		Links: IncomeLinks{
			Self: fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
		},
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of incomes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Data  []IncomeResponse `json:"data"`                                                          // List of the created incomes or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // Data for the income
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	Description string `json:"description" form:"description" filterField:"false"` // By description
	Month       string `json:"month" form:"month"`                                 // By month
	Offset      uint   `json:"offset" form:"offset" filterField:"false"`           // The offset of the first income returned. Defaults to 0.
	Limit       int    `json:"limit" form:"limit" filterField:"false"`             // Maximum number of incomes to return. Defaults to 50.
}

func (f IncomeQueryFilter) model() (models.Income, error) {
	var month types.Month
	if f.Month != "" {
		var err error
		month, err = types.ParseMonth(f.Month)
		if err != nil {
			return models.Income{}, err
		}
	}

	return models.Income{
		Month: month,
	}, nil
}
