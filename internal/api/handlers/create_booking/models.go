package create_booking

import (
	"time"

	"github.com/google/uuid"

	createBooking "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID string `json:"serviceId" validate:"required,uuid"`
	Date      string `json:"date" validate:"required"` // RFC3339, "2025-10-15T10:00:00-03:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	ShopID    uuid.UUID `json:"shopId"`
	ServiceID uuid.UUID `json:"serviceId"`
	UserID    string    `json:"userId"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	CreatedAt string    `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, err
	}

	scheduledAt, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:      userID,
		ServiceID:   serviceID,
		ScheduledAt: scheduledAt,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		ShopID:    resp.ShopID,
		ServiceID: resp.ServiceID,
		UserID:    resp.UserID,
		Date:      resp.ScheduledAt.Format(time.RFC3339),
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
