package controllers

import (
	"time"

	"github.com/spendlog/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name string `json:"name" example:"Transport" default:""` // Name of the category
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name: editable.Name,
	}
}

// Category is the API representation of a category.
//
// The expenses of a category are never embedded here. The expense
// representation embeds its category instead, which keeps the response
// graph acyclic by construction.
type Category struct {
	ID        uint64    `json:"id" example:"4"`                                  // Sequential ID of the category
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"` // Time the category was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"` // Last time the category was updated
	Name      string    `json:"name" example:"Transport"`                        // Name of the category
}

func newCategory(model models.Category) Category {
	return Category{
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		Name:      model.Name,
	}
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                               // Data for the category
	Error *string   `json:"error" example:"there is no category matching your query"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                               // List of categories
	Error *string    `json:"error" example:"there is no category matching your query"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name string `form:"name"` // Filter by exact name
}
