package entity

import "github.com/google/uuid"

// Store represents a physical or logical store that owns products and sales.
type Store struct {
	ID   uuid.UUID `json:"id"`   // The Global Unique Identifier (GUID) for the store.
	Name string    `json:"name"` // Display name of the store.
}
