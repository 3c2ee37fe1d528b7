package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxBarWidth ширина самого длинного столбца диаграммы в символах
const maxBarWidth = 40

// updateChart обрабатывает клавиши на экране диаграмм
func (m Model) updateChart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Back):
		m.clearNotice()
		m.screen = screenReport
		return m, nil
	}
	return m, nil
}

// viewChart отрисовывает диаграмму выручки и таблицу прогноза
func (m Model) viewChart() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.NormalText).
		Render("Sales Analytics")

	revenue := m.renderRevenueBars()
	growth := m.renderGrowthTable()

	return lipgloss.JoinVertical(lipgloss.Left, title, "", revenue, "", growth)
}

// renderRevenueBars столбчатая диаграмма выручки по направлениям
func (m Model) renderRevenueBars() string {
	heading := lipgloss.NewStyle().Foreground(m.theme.FaintText).
		Render("Total Revenue by Destination")

	maxRevenue := 0
	for _, t := range m.totals {
		if t.Revenue > maxRevenue {
			maxRevenue = t.Revenue
		}
	}

	lines := []string{heading, ""}
	for i, t := range m.totals {
		width := 0
		if maxRevenue > 0 {
			width = t.Revenue * maxBarWidth / maxRevenue
		}
		if width == 0 && t.Revenue > 0 {
			width = 1
		}
		bar := lipgloss.NewStyle().Foreground(m.theme.BarColor(i)).
			Render(strings.Repeat("█", width))
		lines = append(lines, fmt.Sprintf("%-12s %s Rs. %d", t.Destination, bar, t.Revenue))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderGrowthTable таблица прогноза выручки по годам
func (m Model) renderGrowthTable() string {
	if len(m.series) == 0 {
		return ""
	}

	lastYear := m.growth.BaseYear + m.growth.Years - 1
	heading := lipgloss.NewStyle().Foreground(m.theme.FaintText).
		Render(fmt.Sprintf("Future Revenue Growth Prediction (%d-%d)", m.growth.BaseYear, lastYear))

	header := fmt.Sprintf("%-12s", "Destination")
	for _, p := range m.series[0].Points {
		header += fmt.Sprintf("%12d", p.Year)
	}

	lines := []string{
		heading,
		"",
		lipgloss.NewStyle().Bold(true).Foreground(m.theme.HeaderBackground).Render(header),
	}
	for _, s := range m.series {
		line := fmt.Sprintf("%-12s", s.Destination)
		for _, p := range s.Points {
			line += fmt.Sprintf("%12.2f", p.Projected)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
