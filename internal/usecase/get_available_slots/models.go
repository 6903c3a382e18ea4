package get_available_slots

import (
	"time"

	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов.
// Closed = true, когда дата закрыта правилами календаря; Reason содержит
// машиночитаемую причину закрытия.
type Response struct {
	Date            time.Time
	ServiceID       int64
	DurationMinutes int
	Slots           []types.TimeString // отсортированные времена начала
	Closed          bool
	Reason          string
}
