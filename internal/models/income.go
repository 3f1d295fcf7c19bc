package models

import (
	"strings"

	"github.com/budgetbook/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is money received in a specific month.
type Income struct {
	DefaultModel
	User            User      `json:"-"`
	UserID          uuid.UUID `gorm:"index"`
	Description     string
	ProjectedAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ActualAmount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Month           types.Month
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Description = strings.TrimSpace(i.Description)
	if i.Description == "" {
		return ErrDescriptionRequired
	}

	if i.Month.IsZero() {
		return ErrMonthRequired
	}

	if i.ProjectedAmount.IsNegative() || i.ActualAmount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}
