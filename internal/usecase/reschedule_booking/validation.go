package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}

	if req.NewStartTime.IsZero() {
		return fmt.Errorf("%w: newStartTime is required", ErrInvalidInput)
	}

	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newStartTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateChangeWindow проверяет, что до момента начала остаётся не меньше
// 24 часов
func validateChangeWindow(startsAt, now time.Time) error {
	if startsAt.Sub(now) < domain.ChangeWindowHours*time.Hour {
		return ErrChangeWindowClosed
	}
	return nil
}

// validateSlotTime проверяет, что время начала лежит на сетке слотов и весь
// интервал помещается в рабочее окно
func validateSlotTime(startTime types.TimeString, durationMinutes int, window domain.HoursWindow) error {
	if !window.IsValid() {
		return fmt.Errorf("%w: working hours window is invalid", ErrInternal)
	}

	start := startTime.Minutes()
	if start < window.Start.Minutes() {
		return fmt.Errorf("%w: starts before working hours", ErrInvalidSlotTime)
	}

	if start+durationMinutes > window.End.Minutes() {
		return fmt.Errorf("%w: does not fit into working hours", ErrInvalidSlotTime)
	}

	if (start-window.Start.Minutes())%domain.SlotStrideMinutes != 0 {
		return fmt.Errorf("%w: not aligned to the slot grid", ErrInvalidSlotTime)
	}

	return nil
}

// validateNotInPast запрещает переносить на уже прошедшее сегодня время
func validateNotInPast(bookingDate time.Time, startTime types.TimeString, now time.Time) error {
	if !isSameDay(bookingDate, now) {
		return nil
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	if startTime.Minutes() <= nowMinutes {
		return ErrTooLateToBook
	}

	return nil
}

// startsAt собирает момент начала из даты и времени в таймзоне бизнеса
func startsAt(date time.Time, start types.TimeString, loc *time.Location) time.Time {
	y, m, d := date.Date()
	minutes := start.Minutes()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
