package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = errors.New("cancel_booking: booking is already cancelled")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому
	// клиенту
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrChangeWindowClosed возвращается, когда до начала визита осталось
	// меньше 24 часов (только для клиентов)
	ErrChangeWindowClosed = errors.New("cancel_booking: change window is closed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
