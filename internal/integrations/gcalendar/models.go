package gcalendar

import "time"

// Event событие календаря для одного бронирования.
// BookingID пишется в private extended properties: по нему событие находится
// при отмене и переносе без хранения event_id на нашей стороне.
type Event struct {
	BookingID   int64
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Timezone    string
}
