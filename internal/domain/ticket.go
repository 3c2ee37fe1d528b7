package domain

import "time"

// Ticket represents one confirmed booking. A ticket is immutable once
// created and is never removed from the store: there is no cancellation
// or edit operation anywhere in the system.
type Ticket struct {
	ID          string // "TKT" + zero-padded sequence number, e.g. "TKT001"
	Name        string
	Age         int
	Gender      string // one of Genders, or empty if the passenger left it unset
	Source      string
	Destination string
	Price       int // ticket price in whole rupees; 0 for the VIP override

	// PaymentMethod is one of PaymentMethods. The method's detail fields
	// (UPI ID, card number, account number) are collected by the payment
	// screen but deliberately never stored.
	PaymentMethod string

	BookedAt time.Time // creation instant, second precision, local clock
}

// IsFree returns true if the ticket was issued at zero price.
func (t *Ticket) IsFree() bool {
	return t.Price == 0
}
