package aggregate_revenue

import (
	"context"
	"sort"
)

// UseCase use case агрегации выручки по направлениям
type UseCase struct {
	store  TicketStore
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store TicketStore, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// Execute группирует билеты по направлению и суммирует цены
// Результат детерминирован: одинаковое содержимое хранилища всегда дает
// одинаковые итоги независимо от остальной истории вызовов.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	tickets := uc.store.List(ctx)
	if len(tickets) == 0 {
		uc.logger.Warn("AggregateRevenue: store is empty, no data to display")
		return nil, ErrNoData
	}

	byDestination := make(map[string]int)
	for _, t := range tickets {
		byDestination[t.Destination] += t.Price
	}

	totals := make([]DestinationTotal, 0, len(byDestination))
	for destination, revenue := range byDestination {
		totals = append(totals, DestinationTotal{
			Destination: destination,
			Revenue:     revenue,
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Destination < totals[j].Destination
	})

	uc.logger.Info("AggregateRevenue: %d tickets across %d destinations", len(tickets), len(totals))

	return &Response{Totals: totals}, nil
}
