package model

import (
	"time"

	"stocklens/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Color     string    `gorm:"type:varchar(16)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the model to a domain entity.
func (m *CategoryModel) ToDomain() *entity.Category {
	return &entity.Category{
		ID:    m.ID,
		Name:  m.Name,
		Color: m.Color,
	}
}
