package export_report

import "errors"

var (
	// ErrNoTickets возвращается при попытке экспорта из пустого хранилища
	// Файл в этом случае не создается и не перезаписывается.
	ErrNoTickets = errors.New("export_report: no bookings to export")

	// ErrIO возвращается, когда файл не удается открыть или записать
	ErrIO = errors.New("export_report: i/o error")
)
