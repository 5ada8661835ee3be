// Package fixtures seeds the database with demo data.
package fixtures

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/spendlog/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var categoryNames = []string{
	"Products",
	"Transport",
	"Entertainment",
	"Utilities",
	"Health",
}

var descriptions = []string{
	"Store purchase",
	"Metro fare",
	"Cinema",
	"Apartment payment",
	"Pharmacy",
}

var paymentMethods = []string{"Card", "Cash", "Online"}

const expenseCount = 20

// Load seeds the demo categories and expenses.
//
// Loading is idempotent: categories are matched by name and the
// expenses are only created when the expense table is empty.
func Load(db *gorm.DB) error {
	categories := make([]models.Category, 0, len(categoryNames))

	for _, name := range categoryNames {
		category, err := models.CategoryByName(db, name)
		if err == nil {
			categories = append(categories, category)
			continue
		}

		if !errors.Is(err, models.ErrResourceNotFound) {
			return err
		}

		category = models.Category{Name: name}
		if err := db.Create(&category).Error; err != nil {
			return err
		}

		categories = append(categories, category)
	}

	var count int64
	if err := db.Model(&models.Expense{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	for range expenseCount {
		category := categories[rand.IntN(len(categories))]
		paymentMethod := paymentMethods[rand.IntN(len(paymentMethods))]

		expense := models.Expense{
			Description:   descriptions[rand.IntN(len(descriptions))],
			Amount:        decimal.NewFromInt(int64(rand.IntN(4901) + 100)),
			Date:          time.Now().In(time.UTC).AddDate(0, 0, -rand.IntN(31)),
			PaymentMethod: &paymentMethod,
			CategoryID:    &category.ID,
		}

		if err := db.Create(&expense).Error; err != nil {
			return err
		}
	}

	return nil
}
