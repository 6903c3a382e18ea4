package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrDateClosed возвращается, когда дата закрыта правилами календаря
	ErrDateClosed = errors.New("create_booking: date is closed for booking")

	// ErrInvalidSlotTime возвращается, когда время начала вне рабочего окна
	// или не лежит на сетке слотов
	ErrInvalidSlotTime = errors.New("create_booking: invalid slot time")

	// ErrTooLateToBook возвращается при попытке забронировать уже прошедшее
	// сегодня время
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotConflict возвращается, когда слот пересекается с существующим
	// бронированием или блокировкой
	ErrSlotConflict = errors.New("create_booking: slot is already taken")

	// ErrPhoneInUse возвращается, когда телефон принадлежит другому аккаунту
	ErrPhoneInUse = errors.New("create_booking: phone belongs to another account")

	// ErrAccessDenied возвращается при отсутствии прав на операцию
	ErrAccessDenied = errors.New("create_booking: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
