package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/spendlog/backend/internal/controllers"
	"github.com/spendlog/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOptionsExpenseList() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/api/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsExpenseStats() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/api/expenses/stats", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsExpenseDetail() {
	_ = suite.createTestExpense(suite.T(), controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimal.NewFromFloat(12.50),
	})

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/api/expenses/1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PUT, PATCH, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/api/expenses/4711", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	category := suite.createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Transport"})

	paymentMethod := "Card"
	expense := suite.createTestExpense(suite.T(), controllers.ExpenseEditable{
		Description:   "Metro fare",
		Amount:        decimal.NewFromFloat(2.50),
		Date:          time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		PaymentMethod: &paymentMethod,
		CategoryID:    &category.Data.ID,
	})

	require.NotNil(suite.T(), expense.Data)
	assert.Equal(suite.T(), "Metro fare", expense.Data.Description)
	assert.True(suite.T(), expense.Data.Amount.Equal(decimal.NewFromFloat(2.50)), "Amount is %s", expense.Data.Amount)
	assert.Equal(suite.T(), time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), expense.Data.Date)

	require.NotNil(suite.T(), expense.Data.PaymentMethod)
	assert.Equal(suite.T(), "Card", *expense.Data.PaymentMethod)

	// The category is embedded with its flat fields only
	require.NotNil(suite.T(), expense.Data.Category)
	assert.Equal(suite.T(), category.Data.ID, expense.Data.Category.ID)
	assert.Equal(suite.T(), "Transport", expense.Data.Category.Name)
}

func (suite *TestSuiteStandard) TestCreateExpenseWithoutCategory() {
	expense := suite.createTestExpense(suite.T(), controllers.ExpenseEditable{
		Description: "Unknown cash spend",
		Amount:      decimal.NewFromFloat(20),
	})

	require.NotNil(suite.T(), expense.Data)
	assert.Nil(suite.T(), expense.Data.Category)
	assert.Nil(suite.T(), expense.Data.PaymentMethod)
}

// A reference to a category that does not exist is dropped, the
// expense is created without a category.
func (suite *TestSuiteStandard) TestCreateExpenseUnknownCategory() {
	unknown := uint64(4711)
	expense := suite.createTestExpense(suite.T(), controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimal.NewFromFloat(12.50),
		CategoryID:  &unknown,
	})

	require.NotNil(suite.T(), expense.Data)
	assert.Nil(suite.T(), expense.Data.Category)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalidBody() {
	tests := []struct {
		name string
		body string
	}{
		{"Empty body", ""},
		{"Empty object", "{}"},
		{"Broken JSON", `{ "description": "Broken`},
		{"Wrong amount type", `{ "description": "Cinema", "amount": "a lot", "date": "2024-03-20T00:00:00Z" }`},
		{"Missing description", `{ "amount": 12.5, "date": "2024-03-20T00:00:00Z" }`},
		{"Empty description", `{ "description": " ", "amount": 12.5, "date": "2024-03-20T00:00:00Z" }`},
		{"Missing amount", `{ "description": "Cinema", "date": "2024-03-20T00:00:00Z" }`},
		{"Missing date", `{ "description": "Cinema", "amount": 12.5 }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/api/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response controllers.ExpenseResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			require.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	_ = suite.createTestExpense(suite.T(), controllers.ExpenseEditable{Description: "Cinema", Amount: decimal.NewFromFloat(12.50)})
	_ = suite.createTestExpense(suite.T(), controllers.ExpenseEditable{Description: "Pharmacy", Amount: decimal.NewFromFloat(8.99)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Cinema", response.Data[0].Description)
	assert.Equal(suite.T(), "Pharmacy", response.Data[1].Description)
}

func (suite *TestSuiteStandard) TestGetExpenseInvalidIDs() {
	tests := []string{
		"http://example.com/api/expenses/-42",
		"http://example.com/api/expenses/NotAnID",
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodGet, tt, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestGetExpenseNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses/4711", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "there is no expense matching your query", *response.Error)
}

// A partial update only changes the fields in the body.
func (suite *TestSuiteStandard) TestUpdateExpense() {
	category := suite.createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Transport"})

	_ = suite.createTestExpense(suite.T(), controllers.ExpenseEditable{
		Description: "Metro fare",
		Amount:      decimal.NewFromFloat(2.50),
		CategoryID:  &category.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/api/expenses/1", `{ "description": "Tram fare" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Tram fare", response.Data.Description)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(2.50)), "Amount changed to %s", response.Data.Amount)
	require.NotNil(suite.T(), response.Data.Category)
	assert.Equal(suite.T(), "Transport", response.Data.Category.Name)
}

// An unknown category reference in an update leaves the current
// category untouched.
func (suite *TestSuiteStandard) TestUpdateExpenseUnknownCategory() {
	category := suite.createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Transport"})

	_ = suite.createTestExpense(suite.T(), controllers.ExpenseEditable{
		Description: "Metro fare",
		Amount:      decimal.NewFromFloat(2.50),
		CategoryID:  &category.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/api/expenses/1", `{ "category_id": 4711 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data.Category)
	assert.Equal(suite.T(), "Transport", response.Data.Category.Name)
}

func (suite *TestSuiteStandard) TestUpdateExpenseChangeCategory() {
	_ = suite.createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Transport"})
	_ = suite.createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Health"})

	one := uint64(1)
	_ = suite.createTestExpense(suite.T(), controllers.ExpenseEditable{
		Description: "Metro fare",
		Amount:      decimal.NewFromFloat(2.50),
		CategoryID:  &one,
	})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/api/expenses/1", `{ "category_id": 2 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data.Category)
	assert.Equal(suite.T(), "Health", response.Data.Category.Name)

	// Explicitly clearing the reference works, too
	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/api/expenses/1", `{ "category_id": null }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Nil(suite.T(), response.Data.Category)
}

func (suite *TestSuiteStandard) TestUpdateExpenseInvalid() {
	_ = suite.createTestExpense(suite.T(), controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimal.NewFromFloat(12.50),
	})

	// Unknown ID
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/api/expenses/4711", `{ "description": "Nope" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Empty body
	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/api/expenses/1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Broken JSON
	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/api/expenses/1", `{ "description": `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	_ = suite.createTestExpense(suite.T(), controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimal.NewFromFloat(12.50),
	})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/api/expenses/1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses/1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/api/expenses/1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseStatsEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses/stats", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ExpenseStatsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Total.IsZero(), "Total is %s, expected 0", response.Data.Total)
	assert.Len(suite.T(), response.Data.ByCategory, 0)
}

func (suite *TestSuiteStandard) TestExpenseStats() {
	transport := suite.createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Transport"})
	_ = suite.createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Entertainment"})

	_ = suite.createTestExpense(suite.T(), controllers.ExpenseEditable{Description: "Metro fare", Amount: decimal.NewFromFloat(2.50), CategoryID: &transport.Data.ID})
	_ = suite.createTestExpense(suite.T(), controllers.ExpenseEditable{Description: "Taxi", Amount: decimal.NewFromFloat(11.80), CategoryID: &transport.Data.ID})
	_ = suite.createTestExpense(suite.T(), controllers.ExpenseEditable{Description: "Unknown cash spend", Amount: decimal.NewFromFloat(20)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses/stats", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ExpenseStatsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromFloat(34.30)), "Total is %s, expected 34.3", response.Data.Total)

	// Transport, uncategorized. Entertainment has no expenses and does
	// not appear.
	require.Len(suite.T(), response.Data.ByCategory, 2)

	sum := decimal.Zero
	for _, group := range response.Data.ByCategory {
		sum = sum.Add(group.Amount)

		if group.Category != nil {
			assert.Equal(suite.T(), "Transport", *group.Category)
			assert.True(suite.T(), group.Amount.Equal(decimal.NewFromFloat(14.30)), "Transport group is %s", group.Amount)
		} else {
			assert.True(suite.T(), group.Amount.Equal(decimal.NewFromFloat(20)), "Uncategorized group is %s", group.Amount)
		}
	}

	assert.True(suite.T(), sum.Equal(response.Data.Total), "Groups sum to %s, total is %s", sum, response.Data.Total)
}

func (suite *TestSuiteStandard) TestExpenseDBError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "an error occurred on the server during your request", *response.Error)
}
