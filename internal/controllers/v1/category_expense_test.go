package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/budgetbook/backend/internal/controllers/v1"
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/types"
	"github.com/budgetbook/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryExpenseCreate() {
	user, headers := suite.createTestUser()
	parentCategory := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/category-expenses", []v1.CategoryExpenseEditable{
		{
			ParentID:        parentCategory.ID,
			Description:     "Groceries",
			ProjectedAmount: decimal.NewFromFloat(180),
			Month:           types.NewMonth(2023, 5),
		},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CategoryExpenseCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.True(suite.T(), response.Data[0].Data.Selectable, "new category expenses must be selectable")
	assert.True(suite.T(), response.Data[0].Data.ActualAmount.IsZero(), "new category expenses must start at zero")
}

func (suite *TestSuiteStandard) TestCategoryExpenseCreateForeignParent() {
	_, headers := suite.createTestUser()
	otherUser, _ := suite.createTestUser()
	foreignParent := suite.createTestParentCategory(models.ParentCategory{UserID: otherUser.ID})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/category-expenses", []v1.CategoryExpenseEditable{
		{
			ParentID:    foreignParent.ID,
			Description: "Groceries",
			Month:       types.NewMonth(2023, 5),
		},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryExpenseUpdateIgnoresActualAmount() {
	user, headers := suite.createTestUser()
	parentCategory := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})
	categoryExpense := suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})

	suite.createTestDailyExpense(models.DailyExpense{
		UserID:            user.ID,
		CategoryExpenseID: &categoryExpense.ID,
		Amount:            decimal.NewFromFloat(30),
		Date:              time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/category-expenses/%s", categoryExpense.ID), map[string]any{
		"actualAmount": "999",
		"description":  "Fancy groceries",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	assert.True(suite.T(), suite.actualAmount(categoryExpense.ID).Equal(decimal.NewFromFloat(30)), "the derived total must not be directly editable")

	var reread models.CategoryExpense
	assert.Nil(suite.T(), models.DB.First(&reread, "id = ?", categoryExpense.ID).Error)
	assert.Equal(suite.T(), "Fancy groceries", reread.Description)
}

func (suite *TestSuiteStandard) TestCategoryExpenseUpdateActualAmountNotSelectable() {
	user, headers := suite.createTestUser()
	parentCategory := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})
	categoryExpense := suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})

	_, _, err := models.SetCategoryExpenseSelectable(models.DB, categoryExpense.ID, user.ID, categoryExpense.Month, false)
	assert.Nil(suite.T(), err)

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/category-expenses/%s", categoryExpense.ID), map[string]any{
		"actualAmount": "120.50",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	assert.True(suite.T(), suite.actualAmount(categoryExpense.ID).Equal(decimal.NewFromFloat(120.50)))
}

func (suite *TestSuiteStandard) TestCategoryExpenseSelectable() {
	user, headers := suite.createTestUser()
	parentCategory := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})
	categoryExpense := suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})

	inMonth := suite.createTestDailyExpense(models.DailyExpense{
		UserID:            user.ID,
		CategoryExpenseID: &categoryExpense.ID,
		Amount:            decimal.NewFromFloat(50),
		Date:              time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
	})
	suite.createTestDailyExpense(models.DailyExpense{
		UserID:            user.ID,
		CategoryExpenseID: &categoryExpense.ID,
		Amount:            decimal.NewFromFloat(30),
		Date:              time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/category-expenses/%s/selectable", categoryExpense.ID), map[string]any{
		"selectable": false,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryExpenseSelectableResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.False(suite.T(), response.Data.Selectable)
	assert.True(suite.T(), response.Data.ActualAmount.IsZero())
	assert.Equal(suite.T(), int64(1), response.Detached, "only the daily expenses of the category expense's month are detached")

	var reread models.DailyExpense
	assert.Nil(suite.T(), models.DB.First(&reread, "id = ?", inMonth.ID).Error)
	assert.Nil(suite.T(), reread.CategoryExpenseID)
}

func (suite *TestSuiteStandard) TestCategoryExpenseSelectableExplicitMonth() {
	user, headers := suite.createTestUser()
	parentCategory := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})
	categoryExpense := suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})

	mayExpense := suite.createTestDailyExpense(models.DailyExpense{
		UserID:            user.ID,
		CategoryExpenseID: &categoryExpense.ID,
		Amount:            decimal.NewFromFloat(50),
		Date:              time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
	})
	suite.createTestDailyExpense(models.DailyExpense{
		UserID:            user.ID,
		CategoryExpenseID: &categoryExpense.ID,
		Amount:            decimal.NewFromFloat(30),
		Date:              time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/category-expenses/%s/selectable", categoryExpense.ID), map[string]any{
		"selectable": false,
		"month":      "2023-06",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryExpenseSelectableResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(1), response.Detached)

	// The expense outside the given month keeps its link
	var reread models.DailyExpense
	assert.Nil(suite.T(), models.DB.First(&reread, "id = ?", mayExpense.ID).Error)
	assert.NotNil(suite.T(), reread.CategoryExpenseID)
}

func (suite *TestSuiteStandard) TestCategoryExpenseSelectableMissingBody() {
	user, headers := suite.createTestUser()
	parentCategory := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})
	categoryExpense := suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/category-expenses/%s/selectable", categoryExpense.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryExpenseSelectableForeign() {
	user, _ := suite.createTestUser()
	_, otherHeaders := suite.createTestUser()
	parentCategory := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})
	categoryExpense := suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/category-expenses/%s/selectable", categoryExpense.ID), map[string]any{
		"selectable": false,
	}, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryExpenseListFilter() {
	user, headers := suite.createTestUser()
	parentCategory := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})
	otherParent := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})

	suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})
	suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})
	suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: otherParent.ID})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/category-expenses?parent=%s", parentCategory.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestCategoryExpenseDelete() {
	user, headers := suite.createTestUser()
	parentCategory := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})
	categoryExpense := suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/category-expenses/%s", categoryExpense.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/category-expenses/%s", uuid.New()), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
