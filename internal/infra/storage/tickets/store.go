package tickets

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-TicketService/internal/domain"
)

// Store хранилище билетов в памяти процесса
// Последовательность append-only: билеты никогда не изменяются и не
// удаляются, порядок хранения равен порядку создания. Данные живут
// только до завершения процесса, персистентности нет.
//
// Приложение однопоточное, но мьютекс делает хранилище корректным
// независимо от того, из какого цикла событий его вызывают.
type Store struct {
	mu      sync.Mutex
	tickets []*domain.Ticket
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{}
}

// Append добавляет билет в конец последовательности
// Это единственная операция, изменяющая хранилище.
func (s *Store) Append(ctx context.Context, ticket *domain.Ticket) error {
	if ticket == nil {
		return ErrNilTicket
	}
	if ticket.ID == "" {
		return ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = append(s.tickets, ticket)
	return nil
}

// List возвращает все билеты в порядке создания
// Возвращается копия среза: вызывающий не может повлиять на хранилище.
func (s *Store) List(ctx context.Context) []*domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// Count возвращает количество билетов
func (s *Store) Count(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickets)
}

// Last возвращает последний созданный билет
// Второе значение false, если хранилище пустое.
func (s *Store) Last(ctx context.Context) (*domain.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tickets) == 0 {
		return nil, false
	}
	return s.tickets[len(s.tickets)-1], true
}
