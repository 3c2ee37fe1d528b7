package confirm_booking

import "errors"

var (
	// ErrMissingPaymentMethod возвращается, когда способ оплаты не выбран
	// или не входит в список поддерживаемых
	ErrMissingPaymentMethod = errors.New("confirm_booking: payment method not selected")

	// ErrUnknownDestination возвращается, когда направления нет в каталоге
	ErrUnknownDestination = errors.New("confirm_booking: unknown destination")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("confirm_booking: internal error")
)
