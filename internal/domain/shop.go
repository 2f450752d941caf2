package domain

import (
	"time"

	"github.com/google/uuid"
)

// Shop represents a barbershop. Shops are read-only for the booking core.
type Shop struct {
	ID          uuid.UUID
	Name        string
	Address     string
	Description string
	ImageURL    string
	Phones      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Service represents a service offered by exactly one shop
type Service struct {
	ID          uuid.UUID
	ShopID      uuid.UUID
	Name        string
	Description string
	ImageURL    string
	// PriceInCents price in minor currency units
	PriceInCents int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
