package schedule

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация расписания еще не сохранена
	ErrConfigNotFound = errors.New("schedule.repository: config not found")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("schedule.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrSerialization возвращается при конфликте serializable транзакций
	ErrSerialization = errors.New("schedule.repository: serialization failure")

	// ErrDocument возвращается, когда JSONB документ не удается разобрать или собрать
	ErrDocument = errors.New("schedule.repository: malformed document")
)
