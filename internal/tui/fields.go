package tui

import tea "github.com/charmbracelet/bubbletea"

// textField однострочное поле ввода
// Курсор всегда в конце строки: для полей формы этого достаточно.
type textField struct {
	label string
	runes []rune
}

func newTextField(label string) textField {
	return textField{label: label}
}

// Update обрабатывает нажатие клавиши в поле ввода
func (f *textField) Update(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if msg.Type == tea.KeySpace {
			f.runes = append(f.runes, ' ')
			return
		}
		f.runes = append(f.runes, msg.Runes...)
	case tea.KeyBackspace:
		if len(f.runes) > 0 {
			f.runes = f.runes[:len(f.runes)-1]
		}
	}
}

// Value возвращает текущее содержимое поля
func (f *textField) Value() string {
	return string(f.runes)
}

// Reset очищает поле
func (f *textField) Reset() {
	f.runes = nil
}

// optionField выбор одного значения из фиксированного списка
// Курсор -1 означает, что выбор не сделан; стрелки листают варианты с
// переходом по кругу.
type optionField struct {
	label       string
	placeholder string
	options     []string
	cursor      int
	// allowUnset разрешает вернуться к несделанному выбору при листании
	// назад с первого варианта (для необязательных полей вроде пола)
	allowUnset bool
}

func newOptionField(label, placeholder string, options []string, allowUnset bool) optionField {
	return optionField{
		label:       label,
		placeholder: placeholder,
		options:     options,
		cursor:      -1,
		allowUnset:  allowUnset,
	}
}

// Next переводит курсор на следующий вариант
func (f *optionField) Next() {
	f.cursor++
	if f.cursor >= len(f.options) {
		if f.allowUnset {
			f.cursor = -1
		} else {
			f.cursor = 0
		}
	}
}

// Prev переводит курсор на предыдущий вариант
func (f *optionField) Prev() {
	f.cursor--
	if f.cursor < -1 || (f.cursor == -1 && !f.allowUnset) {
		f.cursor = len(f.options) - 1
	}
}

// Value возвращает выбранный вариант или пустую строку
func (f *optionField) Value() string {
	if f.cursor < 0 || f.cursor >= len(f.options) {
		return ""
	}
	return f.options[f.cursor]
}

// Display возвращает текст для отрисовки поля
func (f *optionField) Display() string {
	if v := f.Value(); v != "" {
		return v
	}
	return f.placeholder
}

// Reset сбрасывает выбор
func (f *optionField) Reset() {
	f.cursor = -1
}
