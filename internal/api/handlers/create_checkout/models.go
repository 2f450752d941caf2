package create_checkout

import (
	"time"

	"github.com/google/uuid"

	createCheckout "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_checkout"
)

// CreateCheckoutRequest HTTP request model
type CreateCheckoutRequest struct {
	ServiceID string `json:"serviceId" validate:"required,uuid"`
	Date      string `json:"date" validate:"required"` // RFC3339
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateCheckoutRequest) ToUseCaseRequest(userID string) (*createCheckout.Request, error) {
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, err
	}

	scheduledAt, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return nil, err
	}

	return &createCheckout.Request{
		UserID:      userID,
		ServiceID:   serviceID,
		ScheduledAt: scheduledAt,
	}, nil
}
