package project_growth

// DestinationRevenue базовая выручка одного направления
type DestinationRevenue struct {
	Destination string
	Revenue     int
}

// Request параметры прогноза
type Request struct {
	// Totals базовая выручка по направлениям (обычно результат агрегации)
	Totals []DestinationRevenue

	// BaseYear первый год ряда; прогноз покрывает Years последовательных
	// лет начиная с него
	BaseYear int
	Years    int

	// AnnualRate годовой темп роста, например 0.10 для 10%
	AnnualRate float64
}

// Point прогнозное значение на один год
type Point struct {
	Year      int
	Projected float64
}

// DestinationSeries прогнозный ряд одного направления
// Точки идут по возрастанию года.
type DestinationSeries struct {
	Destination string
	Points      []Point
}

// Response прогнозные ряды в том же порядке, что и входные итоги
type Response struct {
	Series []DestinationSeries
}
