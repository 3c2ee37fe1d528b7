package aggregate_revenue

import (
	"context"

	"github.com/m04kA/SMC-TicketService/internal/domain"
)

// TicketStore интерфейс хранилища билетов (только чтение)
type TicketStore interface {
	List(ctx context.Context) []*domain.Ticket
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
