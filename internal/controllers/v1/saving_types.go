package v1

import (
	"fmt"

	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingEditable represents all user configurable parameters
type SavingEditable struct {
	Description     string          `json:"description" example:"Emergency fund" default:""` // Description of the saving
	ProjectedAmount decimal.Decimal `json:"projectedAmount" example:"150"`                   // The amount planned to put aside
	ActualAmount    decimal.Decimal `json:"actualAmount" example:"130"`                      // The amount actually put aside
	Month           types.Month     `json:"month" example:"2023-05-01T00:00:00.000000Z"`     // The month the saving belongs to
}

func (editable SavingEditable) model(userID uuid.UUID) models.Saving {
	return models.Saving{
		UserID:          userID,
		Description:     editable.Description,
		ProjectedAmount: editable.ProjectedAmount,
		ActualAmount:    editable.ActualAmount,
		Month:           editable.Month,
	}
}

type SavingLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/savings/3b1ea324-d438-4419-882a-2fc91d71772f"` // The saving itself
}

type Saving struct {
	models.DefaultModel
	SavingEditable
	Links SavingLinks `json:"links"`
}

func newSaving(c *gin.Context, model models.Saving) Saving {
	url := c.GetString(string(models.DBContextURL))

	return Saving{
		DefaultModel: model.DefaultModel,
		SavingEditable: SavingEditable{
			Description:     model.Description,
			ProjectedAmount: model.ProjectedAmount,
			ActualAmount:    model.ActualAmount,
			Month:           model.Month,
		},
		Links: SavingLinks{
			Self: fmt.Sprintf("%s/v1/savings/%s", url, model.ID),
		},
	}
}

type SavingListResponse struct {
	Data       []Saving    `json:"data"`                                                          // List of savings
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type SavingCreateResponse struct {
	Data  []SavingResponse `json:"data"`                                                          // List of the created savings or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (s *SavingCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, SavingResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SavingResponse struct {
	Data  *Saving `json:"data"`                                                          // Data for the saving
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SavingQueryFilter struct {
	Description string `json:"description" form:"description" filterField:"false"` // By description
	Month       string `json:"month" form:"month"`                                 // By month
	Offset      uint   `json:"offset" form:"offset" filterField:"false"`           // The offset of the first saving returned. Defaults to 0.
	Limit       int    `json:"limit" form:"limit" filterField:"false"`             // Maximum number of savings to return. Defaults to 50.
}

func (f SavingQueryFilter) model() (models.Saving, error) {
	var month types.Month
	if f.Month != "" {
		var err error
		month, err = types.ParseMonth(f.Month)
		if err != nil {
			return models.Saving{}, err
		}
	}

	return models.Saving{
		Month: month,
	}, nil
}
