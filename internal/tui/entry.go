package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/m04kA/SMC-TicketService/internal/usecase/validate_passenger"
)

// Сообщения экрана ввода
const (
	msgFillAllDetails = "Please fill all details before proceeding."
	msgNameLetters    = "Name can only contain letters and spaces."
	msgInvalidAge     = "Age must be a number between 1 and 110."
	msgInternal       = "Something went wrong, see the log file."
)

// Индексы полей формы пассажира
const (
	entryFieldName = iota
	entryFieldAge
	entryFieldGender
	entryFieldSource
	entryFieldDestination
	entryFieldCount
)

// updateEntry обрабатывает клавиши на экране ввода пассажира
func (m Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		return m.submitEntry()

	case key.Matches(msg, keys.NextField):
		m.entryFocus = (m.entryFocus + 1) % entryFieldCount
		return m, nil

	case key.Matches(msg, keys.PrevField):
		m.entryFocus = (m.entryFocus + entryFieldCount - 1) % entryFieldCount
		return m, nil

	case key.Matches(msg, keys.Prev):
		switch m.entryFocus {
		case entryFieldGender:
			m.genderField.Prev()
		case entryFieldSource:
			m.sourceField.Prev()
		case entryFieldDestination:
			m.destField.Prev()
		}
		return m, nil

	case key.Matches(msg, keys.Next):
		switch m.entryFocus {
		case entryFieldGender:
			m.genderField.Next()
		case entryFieldSource:
			m.sourceField.Next()
		case entryFieldDestination:
			m.destField.Next()
		}
		return m, nil
	}

	// Остальной ввод идет в текстовые поля
	switch m.entryFocus {
	case entryFieldName:
		m.nameField.Update(msg)
	case entryFieldAge:
		m.ageField.Update(msg)
	}
	return m, nil
}

// submitEntry валидирует форму и при успехе переходит к оплате
func (m Model) submitEntry() (tea.Model, tea.Cmd) {
	m.clearNotice()

	resp, err := m.validator.Execute(m.ctx, &validate_passenger.Request{
		Name:        m.nameField.Value(),
		Age:         m.ageField.Value(),
		Source:      m.sourceField.Value(),
		Destination: m.destField.Value(),
	})
	if err != nil {
		switch {
		case errors.Is(err, validate_passenger.ErrMissingField):
			m.setNotice(noticeWarn, msgFillAllDetails)
		case errors.Is(err, validate_passenger.ErrInvalidName):
			m.setNotice(noticeError, msgNameLetters)
		case errors.Is(err, validate_passenger.ErrInvalidAge):
			m.setNotice(noticeError, msgInvalidAge)
		default:
			m.logger.Error("Entry: validation failed unexpectedly: %v", err)
			m.setNotice(noticeError, msgInternal)
		}
		return m, nil
	}

	m.passenger = resp
	m.screen = screenPayment
	m.payFocus = 0
	return m, nil
}

// viewEntry отрисовывает форму пассажира
func (m Model) viewEntry() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.NormalText).
		Render("Passenger Details")

	lines := []string{
		m.renderTextLine(entryFieldName, m.nameField.label, m.nameField.Value()),
		m.renderTextLine(entryFieldAge, m.ageField.label, m.ageField.Value()),
		m.renderOptionLine(entryFieldGender, &m.genderField),
		m.renderOptionLine(entryFieldSource, &m.sourceField),
		m.renderOptionLine(entryFieldDestination, &m.destField),
	}

	form := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", form)
}

func (m Model) renderTextLine(index int, label, value string) string {
	return m.renderFieldLine(index, label, value+m.cursorMark(index))
}

func (m Model) renderOptionLine(index int, f *optionField) string {
	display := f.Display()
	if m.entryFocus == index {
		display = "◂ " + display + " ▸"
	}
	if f.Value() == "" {
		display = lipgloss.NewStyle().Foreground(m.theme.FaintText).Render(display)
	}
	return m.renderFieldLine(index, f.label, display)
}

// renderFieldLine строка формы с маркером фокуса
func (m Model) renderFieldLine(index int, label, value string) string {
	marker := "  "
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	if m.entryFocus == index {
		marker = "> "
		labelStyle = labelStyle.Foreground(m.theme.NormalText).Bold(true)
	}
	return fmt.Sprintf("%s%s %s", marker, labelStyle.Render(fmt.Sprintf("%-12s", label+":")), value)
}

// cursorMark символ курсора в сфокусированном текстовом поле
func (m Model) cursorMark(index int) string {
	if m.entryFocus == index {
		return lipgloss.NewStyle().Foreground(m.theme.SelectedBackground).Render("▏")
	}
	return ""
}
