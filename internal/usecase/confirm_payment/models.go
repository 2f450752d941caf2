package confirm_payment

import (
	"time"

	"github.com/google/uuid"
)

// Результаты обработки события (метка метрики payment_events_total)
const (
	ResultIgnored   = "ignored"
	ResultDuplicate = "duplicate"
	ResultCreated   = "created"
	ResultRefunded  = "refunded"
	ResultFailed    = "failed"
)

// Request сырое тело вебхука и заголовок подписи
type Request struct {
	Payload   []byte
	Signature string
}

// Response итог обработки события
type Response struct {
	EventID   string
	EventType string
	Result    string
	// BookingID созданная или ранее созданная бронь
	BookingID *uuid.UUID
	// RejectReason причина отказа в брони, если оплата была возвращена
	RejectReason string
}

// bookingMetadata метаданные checkout-сессии
type bookingMetadata struct {
	ServiceID   uuid.UUID
	ShopID      uuid.UUID
	UserID      string
	ScheduledAt time.Time
}
