package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/m04kA/SMC-TicketService/internal/usecase/confirm_booking"
)

// Сообщения экрана оплаты
const (
	msgSelectPayment = "Please select a payment method."
)

// Фокус экрана оплаты
const (
	payFieldMethod = iota
	payFieldDetail
	payFieldCount
)

// updatePayment обрабатывает клавиши на экране оплаты
func (m Model) updatePayment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		// Назад к форме: введенные данные пассажира сохраняются
		m.clearNotice()
		m.screen = screenEntry
		return m, nil

	case key.Matches(msg, keys.Submit):
		return m.submitPayment()

	case key.Matches(msg, keys.NextField):
		m.payFocus = (m.payFocus + 1) % payFieldCount
		return m, nil

	case key.Matches(msg, keys.PrevField):
		m.payFocus = (m.payFocus + payFieldCount - 1) % payFieldCount
		return m, nil

	case key.Matches(msg, keys.Prev):
		if m.payFocus == payFieldMethod {
			m.methodField.Prev()
			m.detailField.Reset()
		}
		return m, nil

	case key.Matches(msg, keys.Next):
		if m.payFocus == payFieldMethod {
			m.methodField.Next()
			m.detailField.Reset()
		}
		return m, nil
	}

	if m.payFocus == payFieldDetail {
		m.detailField.Update(msg)
	}
	return m, nil
}

// submitPayment подтверждает оплату и создает билет
// Детали оплаты (UPI ID, номер карты, номер счета) собираются формой,
// но в билет не попадают.
func (m Model) submitPayment() (tea.Model, tea.Cmd) {
	m.clearNotice()

	if m.passenger == nil {
		// Сюда нельзя попасть без валидации, но на всякий случай
		m.screen = screenEntry
		return m, nil
	}

	resp, err := m.confirmer.Execute(m.ctx, &confirm_booking.Request{
		Name:          m.passenger.Name,
		Age:           m.passenger.Age,
		Gender:        m.genderField.Value(),
		Source:        m.passenger.Source,
		Destination:   m.passenger.Destination,
		PaymentMethod: m.methodField.Value(),
	})
	if err != nil {
		switch {
		case errors.Is(err, confirm_booking.ErrMissingPaymentMethod):
			m.setNotice(noticeWarn, msgSelectPayment)
		default:
			m.logger.Error("Payment: confirmation failed unexpectedly: %v", err)
			m.setNotice(noticeError, msgInternal)
		}
		return m, nil
	}

	t := resp.Ticket
	m.setNotice(noticeInfo, fmt.Sprintf(
		"Booking confirmed: %s, %s, %s -> %s, Rs. %d. %s",
		t.ID, t.Name, t.Source, t.Destination, t.Price, resp.Message))

	m.resetForm()
	m.screen = screenReport
	return m, nil
}

// viewPayment отрисовывает экран оплаты
func (m Model) viewPayment() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.NormalText).
		Render("Payment Processing")

	if m.passenger == nil {
		return title
	}

	// Информационная таблица цен показывается перед выбором способа
	// оплаты, как отдельный шаг после валидации
	priceLines := []string{
		lipgloss.NewStyle().Foreground(m.theme.FaintText).Render("Available Destinations & Prices"),
	}
	for _, row := range m.passenger.PriceTable {
		priceLines = append(priceLines, fmt.Sprintf("  %-12s Rs. %d", row.Destination, row.Price))
	}
	priceLines = append(priceLines, "",
		fmt.Sprintf("Your ticket price to %s is Rs. %d",
			m.passenger.Destination, m.passenger.Price))

	pricePanel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, priceLines...))

	methodDisplay := m.methodField.Display()
	if m.payFocus == payFieldMethod {
		methodDisplay = "◂ " + methodDisplay + " ▸"
	}
	methodMarker := "  "
	if m.payFocus == payFieldMethod {
		methodMarker = "> "
	}
	lines := []string{
		fmt.Sprintf("%sPayment Method: %s", methodMarker, methodDisplay),
	}

	if label := detailLabel(m.methodField.Value()); label != "" {
		detailMarker := "  "
		cursor := ""
		if m.payFocus == payFieldDetail {
			detailMarker = "> "
			cursor = lipgloss.NewStyle().Foreground(m.theme.SelectedBackground).Render("▏")
		}
		lines = append(lines, fmt.Sprintf("%s%s: %s%s", detailMarker, label, m.detailField.Value(), cursor))
	}

	form := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", pricePanel, "", form)
}

// detailLabel подпись дополнительного поля для выбранного способа оплаты
func detailLabel(method string) string {
	switch method {
	case "UPI":
		return "Enter UPI ID"
	case "Credit Card", "Debit Card":
		return "Enter Card Number"
	case "Net Banking":
		return "Enter Account Number"
	default:
		return ""
	}
}
