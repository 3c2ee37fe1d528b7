package aggregate_revenue

// DestinationTotal суммарная выручка по одному направлению
type DestinationTotal struct {
	Destination string
	Revenue     int
}

// Response итоги агрегации
// Totals отсортированы лексикографически по направлению: порядок не
// зависит от порядка создания билетов.
type Response struct {
	Totals []DestinationTotal
}
