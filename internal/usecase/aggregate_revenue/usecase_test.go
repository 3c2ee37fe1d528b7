package aggregate_revenue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TicketService/internal/domain"
	ticketStore "github.com/m04kA/SMC-TicketService/internal/infra/storage/tickets"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func appendTicket(t *testing.T, store *ticketStore.Store, id, destination string, price int) {
	t.Helper()
	require.NoError(t, store.Append(context.Background(), &domain.Ticket{
		ID:          id,
		Destination: destination,
		Price:       price,
	}))
}

// Два билета в Мумбаи и один в Дели: итоги в лексикографическом порядке
func TestAggregateRevenue_GroupsAndSorts(t *testing.T) {
	store := ticketStore.NewStore()
	appendTicket(t, store, "TKT001", "Mumbai", 1500)
	appendTicket(t, store, "TKT002", "Mumbai", 1500)
	appendTicket(t, store, "TKT003", "Delhi", 1200)

	uc := NewUseCase(store, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []DestinationTotal{
		{Destination: "Delhi", Revenue: 1200},
		{Destination: "Mumbai", Revenue: 3000},
	}, resp.Totals)
}

func TestAggregateRevenue_EmptyStore(t *testing.T) {
	uc := NewUseCase(ticketStore.NewStore(), nopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
}

// Порядок создания билетов не влияет на итоги
func TestAggregateRevenue_Deterministic(t *testing.T) {
	ctx := context.Background()

	forward := ticketStore.NewStore()
	appendTicket(t, forward, "TKT001", "Delhi", 1200)
	appendTicket(t, forward, "TKT002", "Bangalore", 1800)
	appendTicket(t, forward, "TKT003", "Kolkata", 1000)

	backward := ticketStore.NewStore()
	appendTicket(t, backward, "TKT001", "Kolkata", 1000)
	appendTicket(t, backward, "TKT002", "Bangalore", 1800)
	appendTicket(t, backward, "TKT003", "Delhi", 1200)

	first, err := NewUseCase(forward, nopLogger{}).Execute(ctx)
	require.NoError(t, err)
	second, err := NewUseCase(backward, nopLogger{}).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Totals, second.Totals)
}

// Бесплатные VIP-билеты участвуют в агрегации с нулевым вкладом
func TestAggregateRevenue_ZeroPriceTickets(t *testing.T) {
	store := ticketStore.NewStore()
	appendTicket(t, store, "TKT001", "Mumbai", 0)

	resp, err := NewUseCase(store, nopLogger{}).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []DestinationTotal{{Destination: "Mumbai", Revenue: 0}}, resp.Totals)
}
