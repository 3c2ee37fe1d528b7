package tickets

import "errors"

var (
	// ErrNilTicket возвращается при попытке добавить nil-билет
	ErrNilTicket = errors.New("tickets storage: nil ticket")

	// ErrEmptyID возвращается при попытке добавить билет без идентификатора
	ErrEmptyID = errors.New("tickets storage: ticket has empty id")
)
