package models_test

import (
	"time"

	"github.com/spendlog/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExpenseSaveTimeUTC() {
	tz, err := time.LoadLocation("Europe/Berlin")
	require.Nil(suite.T(), err)

	expense := suite.createTestExpense(models.Expense{
		Description: "Store purchase",
		Amount:      decimal.NewFromFloat(17.23),
		Date:        time.Date(2024, 3, 20, 12, 0, 0, 0, tz),
	})

	assert.Equal(suite.T(), time.UTC, expense.Date.Location())
}

// An expense without an explicit date gets the current time.
func (suite *TestSuiteStandard) TestExpenseSaveDefaultsDate() {
	expense := suite.createTestExpense(models.Expense{
		Description: "Pharmacy",
		Amount:      decimal.NewFromFloat(8.99),
	})

	assert.False(suite.T(), expense.Date.IsZero())
	assert.Equal(suite.T(), time.UTC, expense.Date.Location())
}

func (suite *TestSuiteStandard) TestExpenseStatsTotalEmpty() {
	total, err := models.ExpenseStatsTotal(models.DB)

	require.Nil(suite.T(), err)
	assert.True(suite.T(), total.IsZero(), "Total for an empty database is %s, expected 0", total)
}

func (suite *TestSuiteStandard) TestExpenseStatsTotal() {
	_ = suite.createTestExpense(models.Expense{Description: "Cinema", Amount: decimal.NewFromFloat(12.50)})
	_ = suite.createTestExpense(models.Expense{Description: "Metro fare", Amount: decimal.NewFromFloat(2.50)})
	_ = suite.createTestExpense(models.Expense{Description: "Store purchase", Amount: decimal.NewFromFloat(35)})

	total, err := models.ExpenseStatsTotal(models.DB)

	require.Nil(suite.T(), err)
	assert.True(suite.T(), total.Equal(decimal.NewFromFloat(50)), "Total is %s, expected 50", total)
}

func (suite *TestSuiteStandard) TestExpenseStatsByCategory() {
	transport := suite.createTestCategory(models.Category{Name: "Transport"})
	health := suite.createTestCategory(models.Category{Name: "Health"})

	// A category without expenses, it must not appear in the aggregation
	_ = suite.createTestCategory(models.Category{Name: "Entertainment"})

	_ = suite.createTestExpense(models.Expense{Description: "Metro fare", Amount: decimal.NewFromFloat(2.50), CategoryID: &transport.ID})
	_ = suite.createTestExpense(models.Expense{Description: "Taxi", Amount: decimal.NewFromFloat(11.80), CategoryID: &transport.ID})
	_ = suite.createTestExpense(models.Expense{Description: "Pharmacy", Amount: decimal.NewFromFloat(8.99), CategoryID: &health.ID})
	_ = suite.createTestExpense(models.Expense{Description: "Unknown cash spend", Amount: decimal.NewFromFloat(20)})

	spend, err := models.ExpenseStatsByCategory(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), spend, 3)

	sums := make(map[string]decimal.Decimal)
	for _, group := range spend {
		name := ""
		if group.Category != nil {
			name = *group.Category
		}
		sums[name] = group.Amount
	}

	assert.True(suite.T(), sums["Transport"].Equal(decimal.NewFromFloat(14.30)), "Transport group is %s", sums["Transport"])
	assert.True(suite.T(), sums["Health"].Equal(decimal.NewFromFloat(8.99)), "Health group is %s", sums["Health"])
	assert.True(suite.T(), sums[""].Equal(decimal.NewFromFloat(20)), "Uncategorized group is %s", sums[""])
}

// The by-category groups have to add up to the total.
func (suite *TestSuiteStandard) TestExpenseStatsConsistent() {
	category := suite.createTestCategory(models.Category{Name: "Products"})

	_ = suite.createTestExpense(models.Expense{Description: "Store purchase", Amount: decimal.NewFromFloat(54.32), CategoryID: &category.ID})
	_ = suite.createTestExpense(models.Expense{Description: "Store purchase", Amount: decimal.NewFromFloat(12.01), CategoryID: &category.ID})
	_ = suite.createTestExpense(models.Expense{Description: "Unknown", Amount: decimal.NewFromFloat(100)})

	total, err := models.ExpenseStatsTotal(models.DB)
	require.Nil(suite.T(), err)

	spend, err := models.ExpenseStatsByCategory(models.DB)
	require.Nil(suite.T(), err)

	sum := decimal.Zero
	for _, group := range spend {
		sum = sum.Add(group.Amount)
	}

	assert.True(suite.T(), sum.Equal(total), "Groups sum to %s, total is %s", sum, total)
}

func (suite *TestSuiteStandard) TestExpenseStatsDBError() {
	suite.CloseDB()

	_, err := models.ExpenseStatsTotal(models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
