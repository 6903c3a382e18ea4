package create_booking

import (
	"fmt"
	"time"
	"unicode"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
	}

	if err := validatePhone(req.ClientPhone); err != nil {
		return err
	}

	return nil
}

// validatePhone проверяет телефон: необязательный префикс "+" и 9-15 цифр,
// пробелы и дефисы допускаются
func validatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-':
		default:
			return fmt.Errorf("%w: invalid clientPhone format", ErrInvalidInput)
		}
	}

	if digits < 9 || digits > 15 {
		return fmt.Errorf("%w: invalid clientPhone format", ErrInvalidInput)
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

// validateNotInPast запрещает бронировать уже прошедшее сегодня время.
// Прошедшие даты отсекаются раньше правилами календаря.
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

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
