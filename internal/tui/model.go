package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/m04kA/SMC-TicketService/internal/domain"
	"github.com/m04kA/SMC-TicketService/internal/usecase/aggregate_revenue"
	"github.com/m04kA/SMC-TicketService/internal/usecase/project_growth"
	"github.com/m04kA/SMC-TicketService/internal/usecase/validate_passenger"
)

// screen состояние конечного автомата экранов
// Переходы происходят только по успешно провалидированным действиям:
// Entry -> Payment после валидации пассажира, Payment -> Report после
// подтверждения оплаты, Report <-> Chart и Report -> Entry по командам.
type screen int

const (
	screenEntry screen = iota
	screenPayment
	screenReport
	screenChart
)

// noticeKind тип уведомления в строке статуса
type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeInfo
	noticeWarn
	noticeError
)

// GrowthParams параметры модели прогноза для экрана диаграмм
type GrowthParams struct {
	BaseYear   int
	Years      int
	AnnualRate float64
}

// Options зависимости и настройки модели интерфейса
type Options struct {
	Title   string
	Tagline string
	CSVPath string
	Growth  GrowthParams

	Sources      []string
	Destinations []string // имена направлений каталога, отсортированы

	Validator  PassengerValidator
	Confirmer  BookingConfirmer
	Exporter   ReportExporter
	Aggregator RevenueAggregator
	Projector  GrowthProjector
	Reports    ReportSource
	Tickets    TicketSource
	Printer    TicketPrinter
	Logger     Logger
}

// Model модель bubbletea, владеющая состоянием всех экранов
// Вся логика синхронная и выполняется в единственном цикле событий
// bubbletea: никаких фоновых воркеров нет.
type Model struct {
	ctx   context.Context
	theme Theme

	title   string
	tagline string
	csvPath string
	growth  GrowthParams

	validator  PassengerValidator
	confirmer  BookingConfirmer
	exporter   ReportExporter
	aggregator RevenueAggregator
	projector  GrowthProjector
	reports    ReportSource
	tickets    TicketSource
	printer    TicketPrinter
	logger     Logger

	screen screen
	width  int
	height int

	// Экран ввода пассажира
	nameField   textField
	ageField    textField
	genderField optionField
	sourceField optionField
	destField   optionField
	entryFocus  int

	// Экран оплаты: passenger результат успешной валидации
	passenger   *validate_passenger.Response
	methodField optionField
	detailField textField
	payFocus    int

	// Данные экрана диаграмм
	totals []aggregate_revenue.DestinationTotal
	series []project_growth.DestinationSeries

	notice     string
	noticeKind noticeKind
}

// New создает модель интерфейса в состоянии Entry
func New(opts Options) Model {
	return Model{
		ctx:   context.Background(),
		theme: DefaultTheme,

		title:   opts.Title,
		tagline: opts.Tagline,
		csvPath: opts.CSVPath,
		growth:  opts.Growth,

		validator:  opts.Validator,
		confirmer:  opts.Confirmer,
		exporter:   opts.Exporter,
		aggregator: opts.Aggregator,
		projector:  opts.Projector,
		reports:    opts.Reports,
		tickets:    opts.Tickets,
		printer:    opts.Printer,
		logger:     opts.Logger,

		screen: screenEntry,

		nameField:   newTextField("Name"),
		ageField:    newTextField("Age"),
		genderField: newOptionField("Gender", "unset", domain.Genders, true),
		sourceField: newOptionField("Source", "Select Source", opts.Sources, false),
		destField:   newOptionField("Destination", "Select Destination", opts.Destinations, false),

		methodField: newOptionField("Payment Method", "Select Payment Method", domain.PaymentMethods, false),
		detailField: newTextField("Payment Detail"),
	}
}

// Init реализует tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update реализует tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return m, tea.Quit
		}

		switch m.screen {
		case screenEntry:
			return m.updateEntry(msg)
		case screenPayment:
			return m.updatePayment(msg)
		case screenReport:
			return m.updateReport(msg)
		case screenChart:
			return m.updateChart(msg)
		}
	}

	return m, nil
}

// View реализует tea.Model
func (m Model) View() string {
	header := lipgloss.NewStyle().
		Foreground(m.theme.HeaderForeground).
		Background(m.theme.HeaderBackground).
		Bold(true).
		Padding(0, 2).
		Render(m.title)

	tagline := lipgloss.NewStyle().
		Foreground(m.theme.FaintText).
		Italic(true).
		Render(m.tagline)

	var body string
	switch m.screen {
	case screenEntry:
		body = m.viewEntry()
	case screenPayment:
		body = m.viewPayment()
	case screenReport:
		body = m.viewReport()
	case screenChart:
		body = m.viewChart()
	}

	sections := []string{header, tagline, "", body}
	if m.notice != "" {
		sections = append(sections, "", m.renderNotice())
	}
	sections = append(sections, "", m.helpLine())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// setNotice выставляет уведомление строки статуса
// Каждая ошибка таксономии проходит через этот метод: ни один отказ не
// остается незамеченным пользователем.
func (m *Model) setNotice(kind noticeKind, text string) {
	m.noticeKind = kind
	m.notice = text
}

func (m *Model) clearNotice() {
	m.noticeKind = noticeNone
	m.notice = ""
}

func (m Model) renderNotice() string {
	var color lipgloss.Color
	switch m.noticeKind {
	case noticeWarn:
		color = m.theme.NoticeWarn
	case noticeError:
		color = m.theme.NoticeError
	default:
		color = m.theme.NoticeInfo
	}
	return lipgloss.NewStyle().Foreground(color).Render(m.notice)
}

// helpLine подсказка по клавишам текущего экрана
func (m Model) helpLine() string {
	style := lipgloss.NewStyle().Foreground(m.theme.HelpText)
	switch m.screen {
	case screenEntry:
		return style.Render("tab: next field • ←/→: choose option • enter: proceed to payment • ctrl+c: quit")
	case screenPayment:
		return style.Render("tab: switch field • ←/→: payment method • enter: confirm payment • esc: back • ctrl+c: quit")
	case screenReport:
		return style.Render("e: export csv • c: charts • p: print ticket • n: new booking • q: quit")
	case screenChart:
		return style.Render("esc: back to report • q: quit")
	}
	return ""
}

// resetForm очищает состояние формы после подтвержденного бронирования
func (m *Model) resetForm() {
	m.nameField.Reset()
	m.ageField.Reset()
	m.genderField.Reset()
	m.sourceField.Reset()
	m.destField.Reset()
	m.entryFocus = 0

	m.passenger = nil
	m.methodField.Reset()
	m.detailField.Reset()
	m.payFocus = 0
}
