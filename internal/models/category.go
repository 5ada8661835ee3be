package models

import "gorm.io/gorm"

// Category groups expenses under a common name.
type Category struct {
	Model
	Name string `json:"name" example:"Transport" default:""` // Name of the category
}

// Expenses returns all expenses that reference the category.
//
// The category holds no back-reference to its expenses, the relationship
// only exists as the CategoryID field on the Expense.
func (c Category) Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense

	err := db.Where(&Expense{CategoryID: &c.ID}).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// CategoryByName returns the category with exactly the name requested.
func CategoryByName(db *gorm.DB, name string) (Category, error) {
	var category Category

	err := db.Where(&Category{Name: name}).First(&category).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}
