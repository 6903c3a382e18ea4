package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("mailer client: invalid response")

	// ErrDisabled возвращается, когда отправка почты выключена в конфигурации
	ErrDisabled = errors.New("mailer client: disabled")
)
