package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailyExpense is a single spending record on a specific date.
//
// It can link to a category expense. While the linked category is
// selectable, every write to the daily expense is mirrored into the
// category's actual amount within the same transaction.
type DailyExpense struct {
	DefaultModel
	User              User             `json:"-"`
	UserID            uuid.UUID        `gorm:"index"`
	CategoryExpense   *CategoryExpense `json:"-" gorm:"foreignKey:CategoryExpenseID"`
	CategoryExpenseID *uuid.UUID
	Description       string
	Amount            decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date              time.Time
}

// BeforeSave sets the timezone of the date to UTC and verifies required
// fields. An all-zero category link is normalized to an unset one.
func (d *DailyExpense) BeforeSave(_ *gorm.DB) error {
	d.Description = strings.TrimSpace(d.Description)
	if d.Description == "" {
		return ErrDescriptionRequired
	}

	if d.Date.IsZero() {
		return ErrDateRequired
	}
	d.Date = d.Date.UTC()

	if d.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if d.CategoryExpenseID != nil && *d.CategoryExpenseID == uuid.Nil {
		d.CategoryExpenseID = nil
	}

	return nil
}

func (d *DailyExpense) BeforeCreate(tx *gorm.DB) error {
	_ = d.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*DailyExpense)
	return d.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the daily expense before committing
// an update to the database.
func (d *DailyExpense) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("CategoryExpenseID") {
		toSave := tx.Statement.Dest.(DailyExpense)
		return d.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies that the linked category expense exists and
// belongs to the same user.
//
// Only an incoming link is checked. Existing links are left alone since a
// category cascade delete can leave links to categories that no longer
// exist, which reads tolerate.
func (d *DailyExpense) checkIntegrity(tx *gorm.DB, toSave DailyExpense) error {
	if toSave.CategoryExpenseID == nil || *toSave.CategoryExpenseID == uuid.Nil {
		return nil
	}

	return tx.First(&CategoryExpense{}, "id = ? AND user_id = ?", toSave.CategoryExpenseID, d.UserID).Error
}

// CreateDailyExpense persists a new daily expense and mirrors its amount
// into the linked category expense.
func CreateDailyExpense(db *gorm.DB, expense *DailyExpense) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(expense).Error
		if err != nil {
			return err
		}

		return applyActualAmountDelta(tx, expense.CategoryExpenseID, expense.UserID, expense.Amount)
	})
}

// UpdateDailyExpense merges the set fields of update into the daily
// expense with the given id and mirrors the change into the affected
// category expenses.
//
// When the category link is unchanged, the linked category is shifted by
// the difference between the new and the old amount. When the link
// changes, the old category is decremented by the old amount and the new
// one incremented by the new amount.
func UpdateDailyExpense(db *gorm.DB, id, userID uuid.UUID, update DailyExpense, fields []any) (DailyExpense, error) {
	var expense DailyExpense

	// Hooks only validate full saves, so the merged fields are checked here
	for _, field := range fields {
		switch field {
		case "Description":
			update.Description = strings.TrimSpace(update.Description)
			if update.Description == "" {
				return DailyExpense{}, ErrDescriptionRequired
			}
		case "Amount":
			if update.Amount.IsNegative() {
				return DailyExpense{}, ErrAmountNegative
			}
		case "CategoryExpenseID":
			if update.CategoryExpenseID != nil && *update.CategoryExpenseID == uuid.Nil {
				update.CategoryExpenseID = nil
			}
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&expense, "id = ? AND user_id = ?", id, userID).Error
		if err != nil {
			return err
		}

		before := expense

		err = tx.Model(&expense).Select("", fields...).Updates(update).Error
		if err != nil {
			return err
		}

		// Re-read into a zeroed struct instead of trusting the merged
		// in-memory state, a NULL column would leave the old pointer in place
		expense = DailyExpense{}
		err = tx.First(&expense, "id = ?", id).Error
		if err != nil {
			return err
		}

		if uuidPtrEqual(before.CategoryExpenseID, expense.CategoryExpenseID) {
			return applyActualAmountDelta(tx, expense.CategoryExpenseID, userID, expense.Amount.Sub(before.Amount))
		}

		err = applyActualAmountDelta(tx, before.CategoryExpenseID, userID, before.Amount.Neg())
		if err != nil {
			return err
		}

		return applyActualAmountDelta(tx, expense.CategoryExpenseID, userID, expense.Amount)
	})
	if err != nil {
		return DailyExpense{}, err
	}

	return expense, nil
}

// DeleteDailyExpense removes the daily expense with the given id and
// subtracts its amount from the linked category expense.
func DeleteDailyExpense(db *gorm.DB, id, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var expense DailyExpense
		err := tx.First(&expense, "id = ? AND user_id = ?", id, userID).Error
		if err != nil {
			return err
		}

		err = applyActualAmountDelta(tx, expense.CategoryExpenseID, userID, expense.Amount.Neg())
		if err != nil {
			return err
		}

		return tx.Delete(&expense).Error
	})
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
