package gcal

import "errors"

var (
	// ErrTokenNotFound возвращается, когда токен администратора не найден
	ErrTokenNotFound = errors.New("gcal.repository: token not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("gcal.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("gcal.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("gcal.repository: failed to scan row")
)
