package dllist

//go:generate mockgen -destination internal/mocks/logger_mock.go -package mocks -mock_names Logger=LoggerMock github.com/sirkon/intlist/internal/dllist Logger

// Logger абстракция логирования событий списка.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// Error логирование нарушения структуры списка найденного в режиме проверки.
	Error(err error)

	// DebugArenaGrow отладочное логирование расширения хранилища узлов
	// с ёмкости from до ёмкости to.
	DebugArenaGrow(from, to int)

	// WarningStaleHandle предупреждение об обращении по устаревшей или
	// чужой ручке.
	WarningStaleHandle(h Handle)
}

type nopLogger struct{}

func (nopLogger) Error(error)               {}
func (nopLogger) DebugArenaGrow(int, int)   {}
func (nopLogger) WarningStaleHandle(Handle) {}
