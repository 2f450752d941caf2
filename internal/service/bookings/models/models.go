package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           uuid.UUID  `json:"id"`
	ShopID       uuid.UUID  `json:"shopId"`
	ShopName     string     `json:"shopName"`
	ShopAddress  string     `json:"shopAddress"`
	ServiceID    uuid.UUID  `json:"serviceId"`
	ServiceName  string     `json:"serviceName"`
	PriceInCents int64      `json:"priceInCents"`
	UserID       string     `json:"userId"`
	Date         time.Time  `json:"date"`
	Status       string     `json:"status"` // confirmed, finished, cancelled
	Paid         bool       `json:"paid"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// UserBookingsResponse брони пользователя, разделенные для отображения
type UserBookingsResponse struct {
	// Confirmed будущие активные брони, ближайшие первыми
	Confirmed []BookingResponse `json:"confirmed"`
	// Finished прошедшие и отмененные брони, последние первыми
	Finished []BookingResponse `json:"finished"`
}

// CancelBookingResponse результат отмены
type CancelBookingResponse struct {
	Booking  BookingResponse `json:"booking"`
	Refunded bool            `json:"refunded"`
}

// FromDomainBooking конвертирует domain модель в DTO
// shop и service могут быть nil, тогда описательные поля остаются пустыми
func FromDomainBooking(b *domain.Booking, shop *domain.Shop, service *domain.Service, now time.Time) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		ShopID:      b.ShopID,
		ServiceID:   b.ServiceID,
		UserID:      b.UserID,
		Date:        b.ScheduledAt,
		Status:      string(b.Status(now)),
		Paid:        b.IsPaid(),
		CancelledAt: b.CancelledAt,
		CreatedAt:   b.CreatedAt,
	}

	if shop != nil {
		resp.ShopName = shop.Name
		resp.ShopAddress = shop.Address
	}
	if service != nil {
		resp.ServiceName = service.Name
		resp.PriceInCents = service.PriceInCents
	}

	return resp
}
