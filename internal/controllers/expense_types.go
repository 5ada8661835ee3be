package controllers

import (
	"time"

	"github.com/spendlog/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Description   string          `json:"description" example:"Metro fare"`     // What the money was spent on
	Amount        decimal.Decimal `json:"amount" example:"14.5"`                // The amount spent
	Date          time.Time       `json:"date" example:"2024-03-20T00:00:00Z"`  // Date of the expense
	PaymentMethod *string         `json:"payment_method" example:"Card"`        // How the expense was paid, optional
	CategoryID    *uint64         `json:"category_id" example:"4"`              // ID of the category the expense belongs to, optional
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Description:   editable.Description,
		Amount:        editable.Amount,
		Date:          editable.Date,
		PaymentMethod: editable.PaymentMethod,
		CategoryID:    editable.CategoryID,
	}
}

// ExpenseCategory is the category as embedded in the expense
// representation. Only the flat category fields appear here, the
// expense collection of the category is never serialized with it.
type ExpenseCategory struct {
	ID   uint64 `json:"id" example:"4"`           // Sequential ID of the category
	Name string `json:"name" example:"Transport"` // Name of the category
}

// Expense is the API representation of an expense.
type Expense struct {
	ID            uint64           `json:"id" example:"17"`                                 // Sequential ID of the expense
	CreatedAt     time.Time        `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"` // Time the expense was created
	UpdatedAt     time.Time        `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"` // Last time the expense was updated
	Description   string           `json:"description" example:"Metro fare"`                // What the money was spent on
	Amount        decimal.Decimal  `json:"amount" example:"14.5"`                           // The amount spent
	Date          time.Time        `json:"date" example:"2024-03-20T00:00:00Z"`             // Date of the expense
	PaymentMethod *string          `json:"payment_method" example:"Card"`                   // How the expense was paid, null when not recorded
	Category      *ExpenseCategory `json:"category"`                                        // The category of the expense, null when uncategorized
}

func newExpense(db *gorm.DB, model models.Expense) (Expense, error) {
	expense := Expense{
		ID:            model.ID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
		Description:   model.Description,
		Amount:        model.Amount,
		Date:          model.Date,
		PaymentMethod: model.PaymentMethod,
	}

	if model.CategoryID != nil {
		var category models.Category
		err := db.First(&category, *model.CategoryID).Error
		if err != nil {
			return Expense{}, err
		}

		expense.Category = &ExpenseCategory{
			ID:   category.ID,
			Name: category.Name,
		}
	}

	return expense, nil
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                    // Data for the expense
	Error *string  `json:"error" example:"there is no expense matching your query"` // The error, if any occurred
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                                                    // List of expenses
	Error *string   `json:"error" example:"there is no expense matching your query"` // The error, if any occurred
}

// ExpenseStats is the aggregation of all expenses.
type ExpenseStats struct {
	Total      decimal.Decimal        `json:"total" example:"1250.75"` // Sum of the amounts of all expenses
	ByCategory []models.CategorySpend `json:"by_category"`             // Sum of the amounts per category
}

type ExpenseStatsResponse struct {
	Data  *ExpenseStats `json:"data"`  // The aggregated statistics
	Error *string       `json:"error"` // The error, if any occurred
}
