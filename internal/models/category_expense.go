package models

import (
	"strings"
	"time"

	"github.com/budgetbook/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryExpense is a budgeted spending category for one month, nested
// under a parent category.
//
// While Selectable is true, ActualAmount is derived: it equals the sum of
// the amounts of all daily expenses linking to this record, and direct
// edits are not accepted. While Selectable is false, ActualAmount is
// edited directly and no derivation applies.
type CategoryExpense struct {
	DefaultModel
	User            User            `json:"-"`
	UserID          uuid.UUID       `gorm:"index"`
	Parent          ParentCategory  `json:"-" gorm:"foreignKey:ParentID"`
	ParentID        uuid.UUID
	Description     string
	ProjectedAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ActualAmount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Month           types.Month
	Selectable      bool `gorm:"default:true"`
}

// BeforeSave trims whitespace and verifies required fields.
func (e *CategoryExpense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	if e.Description == "" {
		return ErrDescriptionRequired
	}

	if e.Month.IsZero() {
		return ErrMonthRequired
	}

	return nil
}

func (e *CategoryExpense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*CategoryExpense)
	return e.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the category expense before
// committing an update to the database.
func (e *CategoryExpense) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("ParentID") {
		toSave := tx.Statement.Dest.(CategoryExpense)
		return e.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies that the parent category exists and belongs to
// the same user.
func (e *CategoryExpense) checkIntegrity(tx *gorm.DB, toSave CategoryExpense) error {
	return tx.First(&ParentCategory{}, "id = ? AND user_id = ?", toSave.ParentID, toSave.UserID).Error
}

// applyActualAmountDelta shifts the derived total of a selectable category
// expense by delta, as a single conditional update.
//
// A nil id and a zero delta are no-ops. Zero matched rows mean the target
// is missing, foreign or not selectable; all three are legal states that
// must never receive derived writes, so this is not an error.
func applyActualAmountDelta(tx *gorm.DB, id *uuid.UUID, userID uuid.UUID, delta decimal.Decimal) error {
	if id == nil || delta.IsZero() {
		return nil
	}

	return tx.Model(&CategoryExpense{}).
		Where("id = ? AND user_id = ? AND selectable = ?", *id, userID, true).
		UpdateColumn("actual_amount", gorm.Expr("actual_amount + ?", delta)).
		Error
}

// SetCategoryExpenseSelectable switches a category expense between derived
// and directly editable actual amounts.
//
// The actual amount is reset to zero in both directions: turning
// derivation on starts a fresh total that fills up with future daily
// expense writes, it is not backfilled from already linked expenses.
// Turning derivation off additionally detaches all daily expenses of this
// user that link to the category and fall into the given month; their
// count is returned.
func SetCategoryExpenseSelectable(db *gorm.DB, id, userID uuid.UUID, month types.Month, selectable bool) (CategoryExpense, int64, error) {
	var expense CategoryExpense
	var detached int64

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&expense, "id = ? AND user_id = ?", id, userID).Error
		if err != nil {
			return err
		}

		err = tx.Model(&expense).
			Select("Selectable", "ActualAmount").
			Updates(CategoryExpense{Selectable: selectable, ActualAmount: decimal.Zero}).
			Error
		if err != nil {
			return err
		}

		if !selectable {
			// UpdateColumn skips the daily expense hooks, they cannot
			// validate a bulk write without a loaded record
			res := tx.Model(&DailyExpense{}).
				Where("category_expense_id = ? AND user_id = ?", id, userID).
				Where("date >= ? AND date < ?", time.Time(month), time.Time(month.AddDate(0, 1))).
				UpdateColumn("category_expense_id", nil)
			if res.Error != nil {
				return res.Error
			}
			detached = res.RowsAffected
		}

		// Re-read so that callers get the record as persisted
		return tx.First(&expense, "id = ?", id).Error
	})
	if err != nil {
		return CategoryExpense{}, 0, err
	}

	return expense, detached, nil
}
