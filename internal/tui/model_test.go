package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TicketService/internal/domain"
	ticketStore "github.com/m04kA/SMC-TicketService/internal/infra/storage/tickets"
	reportsService "github.com/m04kA/SMC-TicketService/internal/service/reports"
	aggregateRevenueUC "github.com/m04kA/SMC-TicketService/internal/usecase/aggregate_revenue"
	confirmBookingUC "github.com/m04kA/SMC-TicketService/internal/usecase/confirm_booking"
	exportReportUC "github.com/m04kA/SMC-TicketService/internal/usecase/export_report"
	projectGrowthUC "github.com/m04kA/SMC-TicketService/internal/usecase/project_growth"
	validatePassengerUC "github.com/m04kA/SMC-TicketService/internal/usecase/validate_passenger"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubPrinter struct {
	path    string
	err     error
	printed *domain.Ticket
}

func (p *stubPrinter) Print(t *domain.Ticket) (string, error) {
	p.printed = t
	return p.path, p.err
}

// newTestModel собирает модель на реальных use cases и пустом хранилище
func newTestModel(t *testing.T) (Model, *ticketStore.Store) {
	t.Helper()

	catalog := domain.NewCatalog(map[string]int{
		"Delhi":     1200,
		"Mumbai":    1500,
		"Kolkata":   1000,
		"Bangalore": 1800,
	})
	store := ticketStore.NewStore()
	reports := reportsService.NewService(store)
	log := nopLogger{}

	model := New(Options{
		Title:   "Sharma Travelers",
		Tagline: "Your Journey, Our Promise",
		CSVPath: filepath.Join(t.TempDir(), "bookings.csv"),
		Growth: GrowthParams{
			BaseYear:   2025,
			Years:      6,
			AnnualRate: 0.10,
		},
		Sources:      []string{"Delhi", "UP", "Punjab"},
		Destinations: catalog.Names(),
		Validator:    validatePassengerUC.NewUseCase(catalog, log),
		Confirmer:    confirmBookingUC.NewUseCase(store, catalog, "achintya", log),
		Exporter:     exportReportUC.NewUseCase(reports, log),
		Aggregator:   aggregateRevenueUC.NewUseCase(store, log),
		Projector:    projectGrowthUC.NewUseCase(),
		Reports:      reports,
		Tickets:      store,
		Printer:      &stubPrinter{path: "tickets/ticket-TKT001.pdf"},
		Logger:       log,
	})
	return model, store
}

func press(m Model, keyType tea.KeyType) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: keyType})
	return updated.(Model)
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

// fillValidEntry заполняет форму корректными данными пассажира
func fillValidEntry(m Model) Model {
	m = typeText(m, "Rahul")
	m = press(m, tea.KeyTab)
	m = typeText(m, "34")
	m = press(m, tea.KeyTab) // пол
	m = press(m, tea.KeyRight)
	m = press(m, tea.KeyTab) // пункт отправления
	m = press(m, tea.KeyRight)
	m = press(m, tea.KeyTab) // направление
	m = press(m, tea.KeyRight)
	return m
}

// Пустая форма не проходит на экран оплаты
func TestModel_EmptyEntryStaysOnEntry(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(m, tea.KeyEnter)

	assert.Equal(t, screenEntry, m.screen)
	assert.Equal(t, msgFillAllDetails, m.notice)
	assert.Equal(t, noticeWarn, m.noticeKind)
}

func TestModel_InvalidNameNotice(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeText(m, "Rahul99")
	m = press(m, tea.KeyTab)
	m = typeText(m, "34")
	m = press(m, tea.KeyTab)
	m = press(m, tea.KeyTab)
	m = press(m, tea.KeyRight)
	m = press(m, tea.KeyTab)
	m = press(m, tea.KeyRight)
	m = press(m, tea.KeyEnter)

	assert.Equal(t, screenEntry, m.screen)
	assert.Equal(t, msgNameLetters, m.notice)
}

// Валидная форма переводит на экран оплаты с ценой выбранного направления
func TestModel_ValidEntryMovesToPayment(t *testing.T) {
	m, _ := newTestModel(t)

	m = fillValidEntry(m)
	m = press(m, tea.KeyEnter)

	require.Equal(t, screenPayment, m.screen)
	require.NotNil(t, m.passenger)
	assert.Equal(t, "Rahul", m.passenger.Name)
	// Первое направление в отсортированном каталоге
	assert.Equal(t, "Bangalore", m.passenger.Destination)
	assert.Equal(t, 1800, m.passenger.Price)
}

// Подтверждение без способа оплаты остается на экране оплаты
func TestModel_PaymentWithoutMethod(t *testing.T) {
	m, store := newTestModel(t)

	m = fillValidEntry(m)
	m = press(m, tea.KeyEnter)
	m = press(m, tea.KeyEnter)

	assert.Equal(t, screenPayment, m.screen)
	assert.Equal(t, msgSelectPayment, m.notice)
	assert.Equal(t, 0, store.Count(m.ctx))
}

// Полный путь: форма -> оплата -> отчет, билет в хранилище
func TestModel_FullBookingFlow(t *testing.T) {
	m, store := newTestModel(t)

	m = fillValidEntry(m)
	m = press(m, tea.KeyEnter)
	m = press(m, tea.KeyRight) // выбираем UPI
	m = press(m, tea.KeyEnter)

	require.Equal(t, screenReport, m.screen)
	last, ok := store.Last(m.ctx)
	require.True(t, ok)
	assert.Equal(t, "TKT001", last.ID)
	assert.Equal(t, 1, store.Count(m.ctx))
	assert.Equal(t, noticeInfo, m.noticeKind)

	// Форма сброшена для следующего бронирования
	assert.Equal(t, "", m.nameField.Value())
	assert.Equal(t, "", m.ageField.Value())
	assert.Nil(t, m.passenger)
}

// Esc с экрана оплаты возвращает на форму без потери данных
func TestModel_PaymentBackKeepsForm(t *testing.T) {
	m, _ := newTestModel(t)

	m = fillValidEntry(m)
	m = press(m, tea.KeyEnter)
	require.Equal(t, screenPayment, m.screen)

	m = press(m, tea.KeyEsc)
	assert.Equal(t, screenEntry, m.screen)
	assert.Equal(t, "Rahul", m.nameField.Value())
}

// Диаграмма по пустому хранилищу не открывается
func TestModel_ChartWithNoData(t *testing.T) {
	m, _ := newTestModel(t)
	m.screen = screenReport

	m = typeText(m, "c")

	assert.Equal(t, screenReport, m.screen)
	assert.Equal(t, msgNoChartData, m.notice)
	assert.Equal(t, noticeWarn, m.noticeKind)
}

// Экспорт пустого хранилища предупреждает и не падает
func TestModel_ExportWithNoData(t *testing.T) {
	m, _ := newTestModel(t)
	m.screen = screenReport

	m = typeText(m, "e")

	assert.Equal(t, screenReport, m.screen)
	assert.Equal(t, msgNoExport, m.notice)
}

// Без единого бронирования печатать нечего
func TestModel_PrintWithoutTicket(t *testing.T) {
	m, _ := newTestModel(t)
	m.screen = screenReport

	m = typeText(m, "p")

	assert.Equal(t, msgNoTicketToPrint, m.notice)
	assert.Equal(t, noticeWarn, m.noticeKind)
}

// Печать берет последний билет из хранилища и показывает путь к PDF
func TestModel_PrintLastTicket(t *testing.T) {
	m, store := newTestModel(t)
	printer := &stubPrinter{path: "tickets/ticket-TKT001.pdf"}
	m.printer = printer

	m = fillValidEntry(m)
	m = press(m, tea.KeyEnter)
	m = press(m, tea.KeyRight)
	m = press(m, tea.KeyEnter)
	require.Equal(t, screenReport, m.screen)

	m = typeText(m, "p")

	assert.Equal(t, noticeInfo, m.noticeKind)
	assert.Contains(t, m.notice, "tickets/ticket-TKT001.pdf")

	// На печать ушел именно последний билет из хранилища
	last, ok := store.Last(m.ctx)
	require.True(t, ok)
	require.NotNil(t, printer.printed)
	assert.Equal(t, last.ID, printer.printed.ID)
}

// Колонки отчета выравниваются по ширине в терминальных ячейках,
// а не в байтах: имена пассажиров не ограничены ASCII
func TestRenderRow_NonASCIIAlignment(t *testing.T) {
	header := []string{"Booking ID", "Name"}
	rows := [][]string{
		{"TKT001", "José"},
		{"TKT002", "Фёдор Достоевский"},
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	want := lipgloss.Width(renderRow(header, widths))
	for _, row := range rows {
		assert.Equal(t, want, lipgloss.Width(renderRow(row, widths)))
	}
}

// После бронирования диаграмма открывается с итогами и прогнозом
func TestModel_ChartAfterBooking(t *testing.T) {
	m, _ := newTestModel(t)

	m = fillValidEntry(m)
	m = press(m, tea.KeyEnter)
	m = press(m, tea.KeyRight)
	m = press(m, tea.KeyEnter)
	require.Equal(t, screenReport, m.screen)

	m = typeText(m, "c")

	require.Equal(t, screenChart, m.screen)
	require.Len(t, m.totals, 1)
	assert.Equal(t, "Bangalore", m.totals[0].Destination)
	assert.Equal(t, 1800, m.totals[0].Revenue)
	require.Len(t, m.series, 1)
	assert.Len(t, m.series[0].Points, 6)

	// Esc возвращает к отчету
	m = press(m, tea.KeyEsc)
	assert.Equal(t, screenReport, m.screen)
}
