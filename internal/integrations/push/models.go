package push

// Notification push-уведомление для одного устройства
type Notification struct {
	IdempotencyKey string `json:"idempotency_key"`
	DeviceToken    string `json:"device_token"`
	Title          string `json:"title"`
	Body           string `json:"body"`
}

// ErrorResponse модель ошибки от релея
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
