package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/m04kA/SMC-TicketService/internal/usecase/aggregate_revenue"
	"github.com/m04kA/SMC-TicketService/internal/usecase/export_report"
	"github.com/m04kA/SMC-TicketService/internal/usecase/project_growth"
)

// Сообщения экрана отчета
const (
	msgNoExport        = "No bookings to export."
	msgExportFailed    = "Could not write the report file."
	msgNoChartData     = "No data to display chart."
	msgNoTicketToPrint = "No ticket to print yet."
	msgPrintFailed     = "Could not write the ticket PDF."
)

// updateReport обрабатывает клавиши на экране отчета
func (m Model) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.NewBook):
		m.clearNotice()
		m.screen = screenEntry
		return m, nil

	case key.Matches(msg, keys.Export):
		return m.exportCSV()

	case key.Matches(msg, keys.Chart):
		return m.openCharts()

	case key.Matches(msg, keys.Print):
		return m.printTicket()
	}
	return m, nil
}

// exportCSV выгружает отчет в CSV-файл
func (m Model) exportCSV() (tea.Model, tea.Cmd) {
	m.clearNotice()

	resp, err := m.exporter.Execute(m.ctx, &export_report.Request{Path: m.csvPath})
	if err != nil {
		switch {
		case errors.Is(err, export_report.ErrNoTickets):
			m.setNotice(noticeWarn, msgNoExport)
		case errors.Is(err, export_report.ErrIO):
			m.setNotice(noticeError, msgExportFailed)
		default:
			m.logger.Error("Report: export failed unexpectedly: %v", err)
			m.setNotice(noticeError, msgInternal)
		}
		return m, nil
	}

	m.setNotice(noticeInfo, fmt.Sprintf("Report exported to %s (%d bookings).", resp.Path, resp.Rows))
	return m, nil
}

// openCharts агрегирует выручку, строит прогноз и открывает экран диаграмм
// Пустое хранилище остается на экране отчета с предупреждением: пустая
// диаграмма пользователю не показывается.
func (m Model) openCharts() (tea.Model, tea.Cmd) {
	m.clearNotice()

	agg, err := m.aggregator.Execute(m.ctx)
	if err != nil {
		if errors.Is(err, aggregate_revenue.ErrNoData) {
			m.setNotice(noticeWarn, msgNoChartData)
		} else {
			m.logger.Error("Report: aggregation failed unexpectedly: %v", err)
			m.setNotice(noticeError, msgInternal)
		}
		return m, nil
	}

	totals := make([]project_growth.DestinationRevenue, 0, len(agg.Totals))
	for _, t := range agg.Totals {
		totals = append(totals, project_growth.DestinationRevenue{
			Destination: t.Destination,
			Revenue:     t.Revenue,
		})
	}
	proj := m.projector.Execute(&project_growth.Request{
		Totals:     totals,
		BaseYear:   m.growth.BaseYear,
		Years:      m.growth.Years,
		AnnualRate: m.growth.AnnualRate,
	})

	m.totals = agg.Totals
	m.series = proj.Series
	m.screen = screenChart
	return m, nil
}

// printTicket печатает последний созданный билет в PDF
func (m Model) printTicket() (tea.Model, tea.Cmd) {
	m.clearNotice()

	last, ok := m.tickets.Last(m.ctx)
	if !ok {
		m.setNotice(noticeWarn, msgNoTicketToPrint)
		return m, nil
	}

	path, err := m.printer.Print(last)
	if err != nil {
		m.logger.Error("Report: ticket print failed: %v", err)
		m.setNotice(noticeError, msgPrintFailed)
		return m, nil
	}

	m.setNotice(noticeInfo, fmt.Sprintf("Ticket saved to %s.", path))
	return m, nil
}

// viewReport отрисовывает таблицу бронирований
func (m Model) viewReport() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.NormalText).
		Render("Booking Reports & Management")

	header := m.reports.Header()
	rows := m.reports.Rows(m.ctx)

	if len(rows) == 0 {
		empty := lipgloss.NewStyle().Foreground(m.theme.FaintText).
			Render("No bookings yet. Press n to make the first one.")
		return lipgloss.JoinVertical(lipgloss.Left, title, "", empty)
	}

	// Ширина каждой колонки по самому длинному значению
	// Ширина считается в терминальных ячейках, а не в байтах: имена
	// пассажиров не ограничены ASCII.
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.HeaderBackground)
	lines := []string{headerStyle.Render(renderRow(header, widths))}
	for _, row := range rows {
		lines = append(lines, renderRow(row, widths))
	}

	table := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", table)
}

// renderRow выравнивает ячейки строки по ширинам колонок
func renderRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		w := lipgloss.Width(cell)
		if i < len(widths) {
			w = widths[i]
		}
		if pad := w - lipgloss.Width(cell); pad > 0 {
			cell += strings.Repeat(" ", pad)
		}
		padded[i] = cell
	}
	return strings.Join(padded, "  ")
}
