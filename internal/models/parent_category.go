package models

import (
	"strings"

	"github.com/budgetbook/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParentCategory groups the category expenses of a month, e.g. "Household"
// or "Leisure".
type ParentCategory struct {
	DefaultModel
	User        User      `json:"-"`
	UserID      uuid.UUID `gorm:"index"`
	Description string
	Month       types.Month
}

// BeforeSave trims whitespace and verifies required fields.
func (p *ParentCategory) BeforeSave(_ *gorm.DB) error {
	p.Description = strings.TrimSpace(p.Description)
	if p.Description == "" {
		return ErrDescriptionRequired
	}

	if p.Month.IsZero() {
		return ErrMonthRequired
	}

	return nil
}

// DeleteParentCategory deletes a parent category and all category expenses
// nested under it, in one transaction.
//
// Daily expenses linking to the deleted category expenses keep their link.
// Derived writes to a deleted category expense match zero rows, so the read
// and update paths treat such a link like no link at all.
func DeleteParentCategory(db *gorm.DB, id, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var parent ParentCategory
		err := tx.First(&parent, "id = ? AND user_id = ?", id, userID).Error
		if err != nil {
			return err
		}

		err = tx.Delete(&parent).Error
		if err != nil {
			return err
		}

		return tx.Where("parent_id = ? AND user_id = ?", id, userID).Delete(&CategoryExpense{}).Error
	})
}
