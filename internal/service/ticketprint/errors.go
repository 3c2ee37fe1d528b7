package ticketprint

import "errors"

var (
	// ErrNilTicket возвращается при попытке напечатать nil-билет
	ErrNilTicket = errors.New("ticketprint: nil ticket")

	// ErrRender возвращается, когда не удалось собрать QR-код или PDF
	ErrRender = errors.New("ticketprint: render failed")

	// ErrIO возвращается, когда PDF не удалось записать на диск
	ErrIO = errors.New("ticketprint: i/o error")
)
