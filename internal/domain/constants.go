package domain

import "fmt"

// Passenger validation bounds
const (
	MinAge = 1
	MaxAge = 110
)

// Ticket ID format constants
const (
	TicketIDPrefix = "TKT"
	TicketIDDigits = 3
)

// Time format constants
const (
	DateTimeFormat = "2006-01-02 15:04:05" // YYYY-MM-DD HH:MM:SS
)

// Genders перечень значений пола, предлагаемых формой
// Пустое значение допустимо: поле необязательное
var Genders = []string{"M", "F", "O"}

// PaymentMethods поддерживаемые способы оплаты
var PaymentMethods = []string{
	"UPI",
	"Credit Card",
	"Debit Card",
	"Net Banking",
}

// FormatTicketID builds the ticket ID for the given 1-based sequence
// number: FormatTicketID(7) == "TKT007". Sequence numbers above 999
// simply widen the ID; uniqueness is preserved.
func FormatTicketID(sequence int) string {
	return fmt.Sprintf("%s%0*d", TicketIDPrefix, TicketIDDigits, sequence)
}

// IsValidPaymentMethod reports whether method is one of PaymentMethods.
func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
