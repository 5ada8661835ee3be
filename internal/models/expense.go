package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single recorded spend.
//
// The category reference is optional. It is a plain foreign key with
// "ON DELETE SET NULL", deleting a category never deletes its expenses.
type Expense struct {
	Model
	Description   string          `json:"description" example:"Metro fare"`                         // What the money was spent on
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.5"`          // The amount spent
	Date          time.Time       `json:"date" example:"2024-03-20T00:00:00Z"`                      // Date of the expense
	PaymentMethod *string         `json:"paymentMethod" example:"Card"`                             // How the expense was paid, optional
	CategoryID    *uint64         `json:"categoryId" example:"4"`                                   // ID of the category the expense belongs to, optional
	Category      *Category       `json:"-" gorm:"constraint:OnDelete:SET NULL"`                    // The category the expense belongs to
}

// AfterFind updates the date to use UTC as timezone, not +0000.
// See the identical hook on Model.
func (e *Expense) AfterFind(_ *gorm.DB) (err error) {
	e.Date = e.Date.In(time.UTC)
	return nil
}

// BeforeSave sets the timezone for the date to UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// CategorySpend is one group of the spend-by-category aggregation.
// Category is nil for the group of expenses without a category.
type CategorySpend struct {
	Category *string         `json:"category" example:"Transport"` // Name of the category, null for uncategorized expenses
	Amount   decimal.Decimal `json:"amount" example:"273.5"`       // Sum of the amounts of all expenses in the group
}

// ExpenseStatsTotal returns the sum of the amounts of all expenses.
// Without any expenses, the total is zero, never null.
func ExpenseStatsTotal(db *gorm.DB) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	err := db.Model(&Expense{}).Select("SUM(amount)").Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}

	// SUM over an empty table is NULL
	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}

// ExpenseStatsByCategory groups all expenses by their category and sums
// the amounts per group. Categories without expenses do not appear.
func ExpenseStatsByCategory(db *gorm.DB) ([]CategorySpend, error) {
	spend := make([]CategorySpend, 0)

	err := db.Model(&Expense{}).
		Select("categories.name AS category, SUM(expenses.amount) AS amount").
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id").
		Group("expenses.category_id").
		Scan(&spend).Error
	if err != nil {
		return nil, err
	}

	return spend, nil
}
