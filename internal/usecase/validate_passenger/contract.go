package validate_passenger

// Catalog интерфейс каталога направлений
type Catalog interface {
	Price(destination string) (int, bool)
	Names() []string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
