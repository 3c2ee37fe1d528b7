package aggregate_revenue

import "errors"

var (
	// ErrNoData возвращается при агрегации пустого хранилища
	// Ошибка показывается пользователю вместо пустой диаграммы.
	ErrNoData = errors.New("aggregate_revenue: no data to aggregate")
)
