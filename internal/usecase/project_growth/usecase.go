package project_growth

import "math"

// UseCase use case прогноза выручки по модели сложного роста
// Чистая функция: ни хранилище, ни что-либо еще не затрагивается.
type UseCase struct{}

// NewUseCase создает новый экземпляр use case
func NewUseCase() *UseCase {
	return &UseCase{}
}

// Execute строит прогнозный ряд для каждого направления
// projected(year) = revenue * (1 + rate)^(year - baseYear), по одной
// точке на год от BaseYear до BaseYear+Years-1 включительно.
// Пустой вход дает пустой результат (вырожденный случай, не ошибка).
func (uc *UseCase) Execute(req *Request) *Response {
	series := make([]DestinationSeries, 0, len(req.Totals))

	for _, total := range req.Totals {
		points := make([]Point, 0, req.Years)
		for i := 0; i < req.Years; i++ {
			points = append(points, Point{
				Year:      req.BaseYear + i,
				Projected: float64(total.Revenue) * math.Pow(1+req.AnnualRate, float64(i)),
			})
		}
		series = append(series, DestinationSeries{
			Destination: total.Destination,
			Points:      points,
		})
	}

	return &Response{Series: series}
}
