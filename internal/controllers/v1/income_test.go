package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/budgetbook/backend/internal/controllers/v1"
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/types"
	"github.com/budgetbook/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestIncomeCreate() {
	_, headers := suite.createTestUser()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", []v1.IncomeEditable{
		{
			Description:     "Salary",
			ProjectedAmount: decimal.NewFromFloat(2500),
			ActualAmount:    decimal.NewFromFloat(2517.23),
			Month:           types.NewMonth(2023, 5),
		},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.IncomeCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.Contains(suite.T(), response.Data[0].Data.Links.Self, "/v1/incomes/")
}

func (suite *TestSuiteStandard) TestIncomeCreateInvalid() {
	_, headers := suite.createTestUser()

	tests := []struct {
		name string
		body any
	}{
		{"Broken body", `{ "description": 2`},
		{"No description", []v1.IncomeEditable{{ProjectedAmount: decimal.NewFromFloat(100), Month: types.NewMonth(2023, 5)}}},
		{"No month", []v1.IncomeEditable{{Description: "Salary", ProjectedAmount: decimal.NewFromFloat(100)}}},
		{"Negative amount", []v1.IncomeEditable{{Description: "Salary", ActualAmount: decimal.NewFromFloat(-100), Month: types.NewMonth(2023, 5)}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/incomes", tt.body, headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomeListFilterMonth() {
	user, headers := suite.createTestUser()

	suite.createTestIncome(models.Income{UserID: user.ID, Month: types.NewMonth(2023, 5)})
	suite.createTestIncome(models.Income{UserID: user.ID, Month: types.NewMonth(2023, 5)})
	suite.createTestIncome(models.Income{UserID: user.ID, Month: types.NewMonth(2023, 6)})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/incomes?month=2023-05", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.IncomeListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestIncomeUpdate() {
	user, headers := suite.createTestUser()
	income := suite.createTestIncome(models.Income{UserID: user.ID, Month: types.NewMonth(2023, 5)})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/incomes/%s", income.ID), map[string]any{
		"actualAmount": "2700",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.IncomeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.ActualAmount.Equal(decimal.NewFromFloat(2700)))
}

func (suite *TestSuiteStandard) TestIncomeUpdateNoFields() {
	user, headers := suite.createTestUser()
	income := suite.createTestIncome(models.Income{UserID: user.ID, Month: types.NewMonth(2023, 5)})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/incomes/%s", income.ID), map[string]any{}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestIncomeDeleteForeign() {
	user, _ := suite.createTestUser()
	_, otherHeaders := suite.createTestUser()
	income := suite.createTestIncome(models.Income{UserID: user.ID, Month: types.NewMonth(2023, 5)})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/incomes/%s", income.ID), "", otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
