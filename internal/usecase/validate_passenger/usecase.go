package validate_passenger

import (
	"context"
	"strings"
)

// UseCase use case валидации данных пассажира перед переходом к оплате
// Не имеет побочных эффектов: билет на этом шаге не создается.
type UseCase struct {
	catalog Catalog
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog Catalog, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute выполняет валидацию полей формы
// При успехе возвращает цену выбранного направления и полную таблицу цен
// для информационного показа.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация полей формы
	ageVal, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ValidatePassenger: validation failed: %v", err)
		return nil, err
	}

	// 2. Цена выбранного направления
	price, ok := uc.catalog.Price(req.Destination)
	if !ok {
		uc.logger.Error("ValidatePassenger: destination %q is not in the catalog", req.Destination)
		return nil, ErrUnknownDestination
	}

	// 3. Полная таблица цен (каталог отдает имена отсортированными)
	names := uc.catalog.Names()
	table := make([]PriceRow, 0, len(names))
	for _, name := range names {
		p, _ := uc.catalog.Price(name)
		table = append(table, PriceRow{Destination: name, Price: p})
	}

	uc.logger.Info("ValidatePassenger: ok, destination=%s price=%d", req.Destination, price)

	return &Response{
		Name:        strings.TrimSpace(req.Name),
		Age:         ageVal,
		Source:      req.Source,
		Destination: req.Destination,
		Price:       price,
		PriceTable:  table,
	}, nil
}
