package push

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("push client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе релея
	ErrInvalidResponse = errors.New("push client: invalid response")

	// ErrTokenExpired возвращается, когда подписка устройства больше не активна
	ErrTokenExpired = errors.New("push client: device token expired")

	// ErrDisabled возвращается, когда push-уведомления выключены в конфигурации
	ErrDisabled = errors.New("push client: disabled")
)
