package tui

import (
	"context"

	"github.com/m04kA/SMC-TicketService/internal/domain"
	"github.com/m04kA/SMC-TicketService/internal/usecase/aggregate_revenue"
	"github.com/m04kA/SMC-TicketService/internal/usecase/confirm_booking"
	"github.com/m04kA/SMC-TicketService/internal/usecase/export_report"
	"github.com/m04kA/SMC-TicketService/internal/usecase/project_growth"
	"github.com/m04kA/SMC-TicketService/internal/usecase/validate_passenger"
)

// PassengerValidator интерфейс use case валидации пассажира
type PassengerValidator interface {
	Execute(ctx context.Context, req *validate_passenger.Request) (*validate_passenger.Response, error)
}

// BookingConfirmer интерфейс use case подтверждения оплаты
type BookingConfirmer interface {
	Execute(ctx context.Context, req *confirm_booking.Request) (*confirm_booking.Response, error)
}

// ReportExporter интерфейс use case экспорта отчета
type ReportExporter interface {
	Execute(ctx context.Context, req *export_report.Request) (*export_report.Response, error)
}

// RevenueAggregator интерфейс use case агрегации выручки
type RevenueAggregator interface {
	Execute(ctx context.Context) (*aggregate_revenue.Response, error)
}

// GrowthProjector интерфейс use case прогноза роста
type GrowthProjector interface {
	Execute(req *project_growth.Request) *project_growth.Response
}

// ReportSource источник табличного представления бронирований
type ReportSource interface {
	Header() []string
	Rows(ctx context.Context) [][]string
}

// TicketSource источник последнего созданного билета
type TicketSource interface {
	Last(ctx context.Context) (*domain.Ticket, bool)
}

// TicketPrinter печать билета в PDF
type TicketPrinter interface {
	Print(t *domain.Ticket) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
