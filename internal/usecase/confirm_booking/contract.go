package confirm_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TicketService/internal/domain"
)

// TicketStore интерфейс хранилища билетов
// Append единственный способ изменить хранилище.
type TicketStore interface {
	Append(ctx context.Context, ticket *domain.Ticket) error
	Count(ctx context.Context) int
}

// Catalog интерфейс каталога направлений
type Catalog interface {
	Price(destination string) (int, bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
