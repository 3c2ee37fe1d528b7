package reports

import (
	"context"

	"github.com/m04kA/SMC-TicketService/internal/domain"
)

// TicketStore интерфейс хранилища билетов (только чтение)
type TicketStore interface {
	List(ctx context.Context) []*domain.Ticket
}
