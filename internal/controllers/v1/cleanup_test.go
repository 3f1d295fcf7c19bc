package v1_test

import (
	"net/http"
	"time"

	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	user, headers := suite.createTestUser()
	otherUser, _ := suite.createTestUser()

	parentCategory := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})
	categoryExpense := suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})
	suite.createTestDailyExpense(models.DailyExpense{
		UserID:            user.ID,
		CategoryExpenseID: &categoryExpense.ID,
		Amount:            decimal.NewFromFloat(10),
		Date:              time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
	})
	suite.createTestIncome(models.Income{UserID: user.ID})
	suite.createTestSaving(models.Saving{UserID: user.ID})

	otherParent := suite.createTestParentCategory(models.ParentCategory{UserID: otherUser.ID})

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	for _, model := range []any{
		models.ParentCategory{},
		models.CategoryExpense{},
		models.DailyExpense{},
		models.Income{},
		models.Saving{},
	} {
		var count int64
		err := models.DB.Unscoped().Model(&model).Where("user_id = ?", user.ID).Count(&count).Error
		assert.Nil(suite.T(), err)
		assert.Equal(suite.T(), int64(0), count, "Found %d records for model %T", count, model)
	}

	// The user and its data of other users are untouched
	var reread models.User
	assert.Nil(suite.T(), models.DB.First(&reread, "id = ?", user.ID).Error)

	var survivor models.ParentCategory
	assert.Nil(suite.T(), models.DB.First(&survivor, "id = ?", otherParent.ID).Error)
}

func (suite *TestSuiteStandard) TestCleanupNotConfirmed() {
	user, headers := suite.createTestUser()
	suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})

	tests := []string{
		"http://example.com/v1",
		"http://example.com/v1?confirm=yes",
	}

	for _, url := range tests {
		recorder := test.Request(suite.T(), http.MethodDelete, url, "", headers)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}

	var count int64
	assert.Nil(suite.T(), models.DB.Model(&models.ParentCategory{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}
