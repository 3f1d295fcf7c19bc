package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/budgetbook/backend/internal/controllers/v1"
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/types"
	"github.com/budgetbook/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSavingCreate() {
	_, headers := suite.createTestUser()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings", []v1.SavingEditable{
		{
			Description:     "Emergency fund",
			ProjectedAmount: decimal.NewFromFloat(200),
			Month:           types.NewMonth(2023, 5),
		},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.SavingCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.Contains(suite.T(), response.Data[0].Data.Links.Self, "/v1/savings/")
}

func (suite *TestSuiteStandard) TestSavingCreateInvalid() {
	_, headers := suite.createTestUser()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings", []v1.SavingEditable{
		{
			ProjectedAmount: decimal.NewFromFloat(200),
			Month:           types.NewMonth(2023, 5),
		},
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSavingListOwnership() {
	user, headers := suite.createTestUser()
	otherUser, _ := suite.createTestUser()

	suite.createTestSaving(models.Saving{UserID: user.ID})
	suite.createTestSaving(models.Saving{UserID: user.ID})
	suite.createTestSaving(models.Saving{UserID: otherUser.ID})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings", "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SavingListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestSavingUpdate() {
	user, headers := suite.createTestUser()
	saving := suite.createTestSaving(models.Saving{UserID: user.ID})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/savings/%s", saving.ID), map[string]any{
		"description": "Vacation",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var reread models.Saving
	assert.Nil(suite.T(), models.DB.First(&reread, "id = ?", saving.ID).Error)
	assert.Equal(suite.T(), "Vacation", reread.Description)
}

func (suite *TestSuiteStandard) TestSavingDelete() {
	user, headers := suite.createTestUser()
	saving := suite.createTestSaving(models.Saving{UserID: user.ID})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/savings/%s", saving.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/savings/%s", saving.ID), "", headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
