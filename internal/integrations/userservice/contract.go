package userservice

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// StaticAdmins список администраторов из конфигурации
type StaticAdmins interface {
	IsAdmin(userID int64) bool
}
