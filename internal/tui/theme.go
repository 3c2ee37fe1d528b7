package tui

import "github.com/charmbracelet/lipgloss"

// Theme цветовая схема интерфейса
// Все цвета в ANSI 256 для совместимости с большинством терминалов.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	HeaderForeground lipgloss.Color
	HeaderBackground lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	BorderColor lipgloss.Color
	HelpText    lipgloss.Color

	NoticeInfo  lipgloss.Color
	NoticeWarn  lipgloss.Color
	NoticeError lipgloss.Color

	// BarColors цвета столбцов диаграммы, по кругу
	BarColors []lipgloss.Color
}

// DefaultTheme встроенная схема для темного терминала
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("243"),

	HeaderForeground: lipgloss.Color("231"),
	HeaderBackground: lipgloss.Color("205"),

	SelectedBackground: lipgloss.Color("205"),
	SelectedForeground: lipgloss.Color("231"),

	BorderColor: lipgloss.Color("240"),
	HelpText:    lipgloss.Color("243"),

	NoticeInfo:  lipgloss.Color("114"),
	NoticeWarn:  lipgloss.Color("214"),
	NoticeError: lipgloss.Color("203"),

	BarColors: []lipgloss.Color{
		lipgloss.Color("205"),
		lipgloss.Color("117"),
		lipgloss.Color("114"),
		lipgloss.Color("214"),
		lipgloss.Color("141"),
		lipgloss.Color("80"),
	},
}

// BarColor возвращает цвет столбца по индексу (по кругу)
func (t Theme) BarColor(i int) lipgloss.Color {
	if len(t.BarColors) == 0 {
		return t.NormalText
	}
	return t.BarColors[i%len(t.BarColors)]
}
