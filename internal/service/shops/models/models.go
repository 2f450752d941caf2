package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ShopResponse барбершоп в списках
type ShopResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Phones      []string  `json:"phones"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ServiceResponse услуга барбершопа
type ServiceResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	PriceInCents int64     `json:"priceInCents"`
}

// ShopDetailsResponse барбершоп вместе с услугами
type ShopDetailsResponse struct {
	ShopResponse
	Services []ServiceResponse `json:"services"`
}

func FromDomainShop(s *domain.Shop) ShopResponse {
	phones := s.Phones
	if phones == nil {
		phones = []string{}
	}

	return ShopResponse{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		Phones:      phones,
		CreatedAt:   s.CreatedAt,
	}
}

func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		ImageURL:     s.ImageURL,
		PriceInCents: s.PriceInCents,
	}
}

func FromDomainShops(shops []*domain.Shop) []ShopResponse {
	result := make([]ShopResponse, 0, len(shops))
	for _, s := range shops {
		result = append(result, FromDomainShop(s))
	}
	return result
}
