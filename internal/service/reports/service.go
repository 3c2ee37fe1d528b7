package reports

import (
	"context"
	"strconv"

	"github.com/m04kA/SMC-TicketService/internal/domain"
)

// columns фиксированный порядок колонок отчета
// Этот же порядок используется таблицей на экране и CSV-экспортом.
var columns = []string{
	"Booking ID",
	"Name",
	"Age",
	"Gender",
	"Source",
	"Destination",
	"Price",
	"Payment Method",
	"Date",
}

// Service проекция хранилища билетов в табличные строки
// Сервис ничего не изменяет: одинаковое содержимое хранилища всегда
// дает одинаковые строки.
type Service struct {
	store TicketStore
}

// NewService создает новый сервис отчетов
func NewService(store TicketStore) *Service {
	return &Service{store: store}
}

// Header возвращает названия колонок в фиксированном порядке
func (s *Service) Header() []string {
	header := make([]string, len(columns))
	copy(header, columns)
	return header
}

// Rows возвращает билеты в порядке создания, по строке на билет
// Значения уплощены в строки в порядке колонок Header.
func (s *Service) Rows(ctx context.Context) [][]string {
	tickets := s.store.List(ctx)

	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, flatten(t))
	}
	return rows
}

// flatten преобразует билет в строку отчета
func flatten(t *domain.Ticket) []string {
	return []string{
		t.ID,
		t.Name,
		strconv.Itoa(t.Age),
		t.Gender,
		t.Source,
		t.Destination,
		strconv.Itoa(t.Price),
		t.PaymentMethod,
		t.BookedAt.Format(domain.DateTimeFormat),
	}
}
