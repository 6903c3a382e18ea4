package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrBookingCancelled возвращается при попытке перенести отменённое
	// бронирование
	ErrBookingCancelled = errors.New("reschedule_booking: booking is cancelled")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому
	// клиенту
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrChangeWindowClosed возвращается, когда до начала визита осталось
	// меньше 24 часов (только для клиентов)
	ErrChangeWindowClosed = errors.New("reschedule_booking: change window is closed")

	// ErrDateClosed возвращается, когда новая дата закрыта правилами календаря
	ErrDateClosed = errors.New("reschedule_booking: date is closed for booking")

	// ErrInvalidSlotTime возвращается, когда новое время вне рабочего окна
	// или не лежит на сетке слотов
	ErrInvalidSlotTime = errors.New("reschedule_booking: invalid slot time")

	// ErrTooLateToBook возвращается при попытке перенести на уже прошедшее
	// сегодня время
	ErrTooLateToBook = errors.New("reschedule_booking: too late to book this slot")

	// ErrSlotConflict возвращается, когда новый слот пересекается с другим
	// бронированием или блокировкой
	ErrSlotConflict = errors.New("reschedule_booking: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
