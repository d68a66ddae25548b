package repository

import (
	"context"

	"stocklens/internal/domain/entity"
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
