package validate_passenger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TicketService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase() *UseCase {
	catalog := domain.NewCatalog(map[string]int{
		"Delhi":     1200,
		"Mumbai":    1500,
		"Kolkata":   1000,
		"Bangalore": 1800,
	})
	return NewUseCase(catalog, nopLogger{})
}

func TestValidatePassenger_Success(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Name:        "  Rahul Sharma ",
		Age:         "34",
		Source:      "Delhi",
		Destination: "Mumbai",
	})

	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", resp.Name)
	assert.Equal(t, 34, resp.Age)
	assert.Equal(t, "Mumbai", resp.Destination)
	assert.Equal(t, 1500, resp.Price)

	// Таблица цен полная и отсортирована по направлению
	require.Len(t, resp.PriceTable, 4)
	assert.Equal(t, PriceRow{Destination: "Bangalore", Price: 1800}, resp.PriceTable[0])
	assert.Equal(t, PriceRow{Destination: "Delhi", Price: 1200}, resp.PriceTable[1])
	assert.Equal(t, PriceRow{Destination: "Kolkata", Price: 1000}, resp.PriceTable[2])
	assert.Equal(t, PriceRow{Destination: "Mumbai", Price: 1500}, resp.PriceTable[3])
}

func TestValidatePassenger_MissingFields(t *testing.T) {
	uc := newTestUseCase()

	testCases := []struct {
		name string
		req  Request
	}{
		{"empty name", Request{Name: "", Age: "30", Source: "Delhi", Destination: "Mumbai"}},
		{"blank name", Request{Name: "   ", Age: "30", Source: "Delhi", Destination: "Mumbai"}},
		{"empty age", Request{Name: "Rahul", Age: "", Source: "Delhi", Destination: "Mumbai"}},
		{"unset source", Request{Name: "Rahul", Age: "30", Source: "", Destination: "Mumbai"}},
		{"placeholder source", Request{Name: "Rahul", Age: "30", Source: "Select Source", Destination: "Mumbai"}},
		{"unset destination", Request{Name: "Rahul", Age: "30", Source: "Delhi", Destination: ""}},
		{"placeholder destination", Request{Name: "Rahul", Age: "30", Source: "Delhi", Destination: "Select Destination"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tc.req)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestValidatePassenger_InvalidName(t *testing.T) {
	uc := newTestUseCase()

	testCases := []string{"Rahul123", "R@hul", "Rahul!", "42"}

	for _, name := range testCases {
		_, err := uc.Execute(context.Background(), &Request{
			Name:        name,
			Age:         "30",
			Source:      "Delhi",
			Destination: "Mumbai",
		})
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
}

// Имя с пробелами внутри допустимо, проверка посимвольная
func TestValidatePassenger_NameWithSpaces(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		Name:        "Priya Nair Menon",
		Age:         "25",
		Source:      "UP",
		Destination: "Kolkata",
	})
	assert.NoError(t, err)
}

func TestValidatePassenger_InvalidAge(t *testing.T) {
	uc := newTestUseCase()

	testCases := []struct {
		name string
		age  string
	}{
		{"not a number", "abc"},
		{"float", "30.5"},
		{"zero", "0"},
		{"negative", "-5"},
		{"above limit", "111"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				Name:        "Rahul",
				Age:         tc.age,
				Source:      "Delhi",
				Destination: "Mumbai",
			})
			assert.ErrorIs(t, err, ErrInvalidAge)
		})
	}
}

// Граничные значения возраста принимаются
func TestValidatePassenger_AgeBounds(t *testing.T) {
	uc := newTestUseCase()

	for _, age := range []string{"1", "110"} {
		_, err := uc.Execute(context.Background(), &Request{
			Name:        "Rahul",
			Age:         age,
			Source:      "Delhi",
			Destination: "Mumbai",
		})
		assert.NoError(t, err, "age %s", age)
	}
}

func TestValidatePassenger_UnknownDestination(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		Name:        "Rahul",
		Age:         "30",
		Source:      "Delhi",
		Destination: "Chennai",
	})
	assert.ErrorIs(t, err, ErrUnknownDestination)
}
