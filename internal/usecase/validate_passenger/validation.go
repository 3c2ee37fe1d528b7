package validate_passenger

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/m04kA/SMC-TicketService/internal/domain"
)

// Значения-заглушки несделанного выбора в выпадающих списках
const (
	placeholderSource      = "Select Source"
	placeholderDestination = "Select Destination"
)

// isAlphabetic проверяет, что строка состоит только из букв и пробелов
// Проверка посимвольная по всей строке; пустая строка проходит тривиально
// (пустое имя отлавливается раньше как MissingField).
func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// isUnset проверяет, что выбор в списке не сделан
func isUnset(value, placeholder string) bool {
	v := strings.TrimSpace(value)
	return v == "" || v == placeholder
}

// validateRequest валидирует поля формы и возвращает разобранный возраст
func validateRequest(req *Request) (int, error) {
	name := strings.TrimSpace(req.Name)
	age := strings.TrimSpace(req.Age)

	if name == "" || age == "" ||
		isUnset(req.Source, placeholderSource) ||
		isUnset(req.Destination, placeholderDestination) {
		return 0, fmt.Errorf("%w: fill all details before proceeding", ErrMissingField)
	}

	if !isAlphabetic(name) {
		return 0, ErrInvalidName
	}

	ageVal, err := strconv.Atoi(age)
	if err != nil {
		return 0, fmt.Errorf("%w: age must be a number", ErrInvalidAge)
	}
	if ageVal < domain.MinAge || ageVal > domain.MaxAge {
		return 0, fmt.Errorf("%w: age must be between %d and %d", ErrInvalidAge, domain.MinAge, domain.MaxAge)
	}

	return ageVal, nil
}
