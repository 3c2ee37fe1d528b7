package validate_passenger

import "errors"

var (
	// ErrMissingField возвращается, когда не заполнено обязательное поле
	// (имя, возраст, пункт отправления или направление)
	ErrMissingField = errors.New("validate_passenger: missing required field")

	// ErrInvalidName возвращается, когда имя содержит символы кроме букв и пробелов
	ErrInvalidName = errors.New("validate_passenger: name may contain only letters and spaces")

	// ErrInvalidAge возвращается, когда возраст не число или вне диапазона [1, 110]
	ErrInvalidAge = errors.New("validate_passenger: invalid age")

	// ErrUnknownDestination возвращается, когда направления нет в каталоге
	// Форма предлагает только направления из каталога, так что эта ошибка
	// означает рассинхронизацию формы и каталога.
	ErrUnknownDestination = errors.New("validate_passenger: unknown destination")
)
