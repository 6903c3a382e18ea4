package gcalendar

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gcalendar client: internal error")

	// ErrEventNotFound возвращается, когда событие бронирования не найдено
	ErrEventNotFound = errors.New("gcalendar client: event not found")

	// ErrDisabled возвращается, когда синхронизация календаря выключена
	ErrDisabled = errors.New("gcalendar client: disabled")
)
