package project_growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Базовая выручка 1000 в 2025 при 10% годовых:
// [1000, 1100, 1210, 1331, 1464.1, 1610.51]
func TestProjectGrowth_ReferenceSeries(t *testing.T) {
	uc := NewUseCase()

	resp := uc.Execute(&Request{
		Totals:     []DestinationRevenue{{Destination: "Delhi", Revenue: 1000}},
		BaseYear:   2025,
		Years:      6,
		AnnualRate: 0.10,
	})

	require.Len(t, resp.Series, 1)
	series := resp.Series[0]
	assert.Equal(t, "Delhi", series.Destination)
	require.Len(t, series.Points, 6)

	expected := []float64{1000, 1100, 1210, 1331, 1464.1, 1610.51}
	for i, point := range series.Points {
		assert.Equal(t, 2025+i, point.Year)
		assert.InDelta(t, expected[i], point.Projected, 1e-9)
	}
}

// Прогноз по каждому направлению считается независимо
func TestProjectGrowth_PerDestination(t *testing.T) {
	uc := NewUseCase()

	resp := uc.Execute(&Request{
		Totals: []DestinationRevenue{
			{Destination: "Delhi", Revenue: 1200},
			{Destination: "Mumbai", Revenue: 3000},
		},
		BaseYear:   2025,
		Years:      6,
		AnnualRate: 0.10,
	})

	require.Len(t, resp.Series, 2)
	assert.Equal(t, "Delhi", resp.Series[0].Destination)
	assert.Equal(t, "Mumbai", resp.Series[1].Destination)

	// Первая точка каждого ряда равна базовой выручке
	assert.InDelta(t, 1200, resp.Series[0].Points[0].Projected, 1e-9)
	assert.InDelta(t, 3000, resp.Series[1].Points[0].Projected, 1e-9)
}

// Пустой вход дает пустой результат, это не ошибка
func TestProjectGrowth_EmptyInput(t *testing.T) {
	uc := NewUseCase()

	resp := uc.Execute(&Request{
		BaseYear:   2025,
		Years:      6,
		AnnualRate: 0.10,
	})
	assert.Empty(t, resp.Series)
}

func TestProjectGrowth_ZeroRate(t *testing.T) {
	uc := NewUseCase()

	resp := uc.Execute(&Request{
		Totals:     []DestinationRevenue{{Destination: "Delhi", Revenue: 500}},
		BaseYear:   2025,
		Years:      3,
		AnnualRate: 0,
	})

	require.Len(t, resp.Series, 1)
	for _, point := range resp.Series[0].Points {
		assert.InDelta(t, 500, point.Projected, 1e-9)
	}
}
