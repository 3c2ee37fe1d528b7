package export_report

import "context"

// ReportSource источник табличного представления бронирований
type ReportSource interface {
	Header() []string
	Rows(ctx context.Context) [][]string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
