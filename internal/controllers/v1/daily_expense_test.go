package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/budgetbook/backend/internal/controllers/v1"
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDailyExpenseCreate() {
	user, headers := suite.createTestUser()
	parentCategory := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})
	categoryExpense := suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/daily-expenses", []v1.DailyExpenseEditable{
		{
			CategoryExpenseID: &categoryExpense.ID,
			Description:       "Groceries at the farmers market",
			Amount:            decimal.NewFromFloat(17.32),
			Date:              time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
		},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.DailyExpenseCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.NotNil(suite.T(), response.Data[0].Data.Links.CategoryExpense)
	assert.True(suite.T(), suite.actualAmount(categoryExpense.ID).Equal(decimal.NewFromFloat(17.32)))
}

func (suite *TestSuiteStandard) TestDailyExpenseCreateUnlinked() {
	_, headers := suite.createTestUser()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/daily-expenses", []v1.DailyExpenseEditable{
		{
			Description: "Parking ticket",
			Amount:      decimal.NewFromFloat(3),
			Date:        time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
		},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.DailyExpenseCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Nil(suite.T(), response.Data[0].Data.Links.CategoryExpense)
}

func (suite *TestSuiteStandard) TestDailyExpenseCreateForeignCategory() {
	_, headers := suite.createTestUser()
	otherUser, _ := suite.createTestUser()
	foreignParent := suite.createTestParentCategory(models.ParentCategory{UserID: otherUser.ID})
	foreignCategory := suite.createTestCategoryExpense(models.CategoryExpense{UserID: otherUser.ID, ParentID: foreignParent.ID})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/daily-expenses", []v1.DailyExpenseEditable{
		{
			CategoryExpenseID: &foreignCategory.ID,
			Description:       "Groceries",
			Amount:            decimal.NewFromFloat(10),
			Date:              time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
		},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDailyExpenseCreateInvalid() {
	_, headers := suite.createTestUser()

	tests := []struct {
		name string
		body any
	}{
		{"Broken body", `{ "description": 2`},
		{"No description", []v1.DailyExpenseEditable{{Amount: decimal.NewFromFloat(10), Date: time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC)}}},
		{"No date", []v1.DailyExpenseEditable{{Description: "Groceries", Amount: decimal.NewFromFloat(10)}}},
		{"Negative amount", []v1.DailyExpenseEditable{{Description: "Groceries", Amount: decimal.NewFromFloat(-10), Date: time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC)}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/daily-expenses", tt.body, headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

// TestDailyExpenseLifecycle verifies the derived total of a category expense
// as daily expenses are created, updated and deleted through the API.
func (suite *TestSuiteStandard) TestDailyExpenseLifecycle() {
	user, headers := suite.createTestUser()
	parentCategory := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})
	categoryExpense := suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/daily-expenses", []v1.DailyExpenseEditable{
		{
			CategoryExpenseID: &categoryExpense.ID,
			Description:       "Groceries",
			Amount:            decimal.NewFromFloat(50),
			Date:              time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			CategoryExpenseID: &categoryExpense.ID,
			Description:       "Pharmacy",
			Amount:            decimal.NewFromFloat(30),
			Date:              time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.DailyExpenseCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	groceries := response.Data[0].Data.ID
	pharmacy := response.Data[1].Data.ID

	assert.True(suite.T(), suite.actualAmount(categoryExpense.ID).Equal(decimal.NewFromFloat(80)))

	recorder = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/daily-expenses/%s", pharmacy), map[string]any{
		"amount": "20",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	assert.True(suite.T(), suite.actualAmount(categoryExpense.ID).Equal(decimal.NewFromFloat(70)))

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/daily-expenses/%s", groceries), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.True(suite.T(), suite.actualAmount(categoryExpense.ID).Equal(decimal.NewFromFloat(20)))
}

func (suite *TestSuiteStandard) TestDailyExpenseUpdateRelink() {
	user, headers := suite.createTestUser()
	parentCategory := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})
	from := suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})
	to := suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})

	dailyExpense := suite.createTestDailyExpense(models.DailyExpense{
		UserID:            user.ID,
		CategoryExpenseID: &from.ID,
		Amount:            decimal.NewFromFloat(25),
		Date:              time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/daily-expenses/%s", dailyExpense.ID), map[string]any{
		"categoryExpenseId": to.ID,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	assert.True(suite.T(), suite.actualAmount(from.ID).IsZero())
	assert.True(suite.T(), suite.actualAmount(to.ID).Equal(decimal.NewFromFloat(25)))
}

func (suite *TestSuiteStandard) TestDailyExpenseUpdateEmptyDescription() {
	user, headers := suite.createTestUser()
	dailyExpense := suite.createTestDailyExpense(models.DailyExpense{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(10),
		Date:   time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/daily-expenses/%s", dailyExpense.ID), map[string]any{
		"description": "  ",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

// The date of a daily expense is fixed at creation.
func (suite *TestSuiteStandard) TestDailyExpenseUpdateDateIgnored() {
	user, headers := suite.createTestUser()
	date := time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC)
	dailyExpense := suite.createTestDailyExpense(models.DailyExpense{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(10),
		Date:   date,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/daily-expenses/%s", dailyExpense.ID), map[string]any{
		"date": "2023-06-01T00:00:00Z",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/daily-expenses/%s", dailyExpense.ID), map[string]any{
		"date":        "2023-06-01T00:00:00Z",
		"description": "Groceries, again",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DailyExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Groceries, again", response.Data.Description)
	assert.True(suite.T(), response.Data.Date.Equal(date), "the date must not change on update")
}

func (suite *TestSuiteStandard) TestDailyExpenseGetForeign() {
	user, _ := suite.createTestUser()
	_, otherHeaders := suite.createTestUser()
	dailyExpense := suite.createTestDailyExpense(models.DailyExpense{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(10),
		Date:   time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/daily-expenses/%s", dailyExpense.ID), "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDailyExpenseListFilters() {
	user, headers := suite.createTestUser()
	parentCategory := suite.createTestParentCategory(models.ParentCategory{UserID: user.ID})
	categoryExpense := suite.createTestCategoryExpense(models.CategoryExpense{UserID: user.ID, ParentID: parentCategory.ID})

	suite.createTestDailyExpense(models.DailyExpense{
		UserID:            user.ID,
		CategoryExpenseID: &categoryExpense.ID,
		Amount:            decimal.NewFromFloat(10),
		Date:              time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
	})
	suite.createTestDailyExpense(models.DailyExpense{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(20),
		Date:   time.Date(2023, 5, 14, 0, 0, 0, 0, time.UTC),
	})
	suite.createTestDailyExpense(models.DailyExpense{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(30),
		Date:   time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC),
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Category expense", fmt.Sprintf("categoryExpense=%s", categoryExpense.ID), 1},
		{"Date", "date=2023-05-14", 2},
		{"Month", "month=2023-05", 2},
		{"Month without match", "month=2023-07", 0},
		{"Limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/daily-expenses?%s", tt.query), "", headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.DailyExpenseListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestDailyExpenseDeleteNonexistent() {
	_, headers := suite.createTestUser()

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/daily-expenses/%s", uuid.New()), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
