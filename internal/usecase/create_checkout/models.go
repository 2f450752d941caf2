package create_checkout

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на оплату брони
type Request struct {
	UserID      string
	ServiceID   uuid.UUID
	ScheduledAt time.Time
}

// Response платежная сессия, на которую нужно перенаправить пользователя
type Response struct {
	SessionID string
	URL       string
}
