package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ShopID uuid.UUID // ID барбершопа
	Date   time.Time // Календарный день (время игнорируется)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date   time.Time          // Начало запрошенного дня
	ShopID uuid.UUID          // ID барбершопа
	Slots  []types.TimeString // Свободные слоты в порядке каталога
}
