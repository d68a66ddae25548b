package model

import (
	"time"

	"stocklens/internal/domain/entity"

	"github.com/google/uuid"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
type StoreModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// ToDomain converts the model to a domain entity.
func (m *StoreModel) ToDomain() *entity.Store {
	return &entity.Store{
		ID:   m.ID,
		Name: m.Name,
	}
}
