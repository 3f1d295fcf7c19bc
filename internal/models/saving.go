package models

import (
	"strings"

	"github.com/budgetbook/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Saving is money put aside in a specific month.
type Saving struct {
	DefaultModel
	User            User      `json:"-"`
	UserID          uuid.UUID `gorm:"index"`
	Description     string
	ProjectedAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ActualAmount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Month           types.Month
}

func (s *Saving) BeforeSave(_ *gorm.DB) error {
	s.Description = strings.TrimSpace(s.Description)
	if s.Description == "" {
		return ErrDescriptionRequired
	}

	if s.Month.IsZero() {
		return ErrMonthRequired
	}

	if s.ProjectedAmount.IsNegative() || s.ActualAmount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}
