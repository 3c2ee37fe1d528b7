package confirm_booking

import "github.com/m04kA/SMC-TicketService/internal/domain"

// Тексты подтверждения, показываемые пассажиру
const (
	msgVIPOverride = "NO CHARGES FOR BOSS"
	msgRegular     = "Have a wonderful journey!"
)

// Request уже провалидированные данные пассажира и выбранный способ оплаты
// Поля пассажира приходят из validate_passenger; повторная валидация
// имени и возраста здесь не выполняется.
type Request struct {
	Name        string
	Age         int
	Gender      string // может быть пустым: поле необязательное
	Source      string
	Destination string

	PaymentMethod string
}

// Response созданный билет и сопроводительное сообщение
type Response struct {
	Ticket *domain.Ticket

	// VIP признак применения бесплатного переопределения цены
	VIP bool

	// Message текст для окна подтверждения
	Message string
}
