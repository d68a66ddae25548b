package entity

import "github.com/google/uuid"

// DefaultCategoryColor is used when a category has no display color assigned.
const DefaultCategoryColor = "#8884d8"

// Category groups products for distribution and profitability rollups.
type Category struct {
	ID    uuid.UUID `json:"id"`    // The Global Unique Identifier (GUID) for the category.
	Name  string    `json:"name"`  // Display name of the category.
	Color string    `json:"color"` // Optional display color for charts.
}

// DisplayColor returns the category color, falling back to the default.
func (c *Category) DisplayColor() string {
	if c.Color == "" {
		return DefaultCategoryColor
	}

	return c.Color
}
