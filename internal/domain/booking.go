package domain

import (
	"time"

	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	// StatusCancelled is terminal: cancelled bookings are kept for history
	// but excluded from every conflict check and slot computation
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a committed appointment.
// The service data is denormalized (snapshot) so catalog edits never
// rewrite history. EndTime is always StartTime + ServiceDurationMinutes,
// computed at creation/reschedule time.
type Booking struct {
	ID          int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus

	// Service snapshot
	ServiceName            string
	ServiceDurationMinutes int
	ServicePrice           float64
	ServiceCategory        string

	// Client identity: phone is the canonical key, email is optional
	ClientName  string
	ClientPhone string
	ClientEmail *string

	// ResponsibleAdminID scopes conflict checks and calendar sync.
	// nil = unassigned lane: such bookings conflict only with each other.
	ResponsibleAdminID *int64

	ReminderSent bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// StartsAt combines the booking date and start time in the given location
func (b *Booking) StartsAt(loc *time.Location) time.Time {
	y, m, d := b.BookingDate.Date()
	minutes := b.StartTime.Minutes()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc)
}

// DayBookingsFilter фильтр для выборки бронирований на дату
type DayBookingsFilter struct {
	Date               time.Time // Обязательный параметр (только дата, без времени)
	ResponsibleAdminID *int64    // Дорожка специалиста (nil = неназначенные, см. AnyAdmin)
	AnyAdmin           bool      // true = все дорожки (для агенды администратора)
	IncludeCancelled   bool      // Включать ли отменённые бронирования
}
