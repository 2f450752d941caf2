package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID      string    // ID аутентифицированного пользователя
	ServiceID   uuid.UUID // ID услуги
	ScheduledAt time.Time // Дата и время брони
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          uuid.UUID
	ShopID      uuid.UUID
	ServiceID   uuid.UUID
	UserID      string
	ScheduledAt time.Time
	Status      string
	CreatedAt   time.Time
}
