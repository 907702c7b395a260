package models

import "time"

// TicketStatus is the payment state of a ticket.
type TicketStatus string

const (
	// TicketStatusReserved means the ticket was picked but not paid for.
	TicketStatusReserved TicketStatus = "RESERVED"
	// TicketStatusPaid means payment was confirmed.
	TicketStatusPaid TicketStatus = "PAID"
)

// TicketType describes what a ticket grants. Remote tickets and tickets
// without hotel accommodation never qualify for room booking.
type TicketType struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Price         float64   `json:"price" db:"price"`
	IsRemote      bool      `json:"is_remote" db:"is_remote"`
	IncludesHotel bool      `json:"includes_hotel" db:"includes_hotel"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Ticket ties an enrollment to a ticket type and payment status. Owned by
// the enrollment subsystem; read-only here.
type Ticket struct {
	ID           string       `json:"id" db:"id"`
	EnrollmentID string       `json:"enrollment_id" db:"enrollment_id"`
	TicketTypeID string       `json:"ticket_type_id" db:"ticket_type_id"`
	Status       TicketStatus `json:"status" db:"status"`
	TicketType   TicketType   `json:"ticket_type"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

// Enrollment is the attendee registration record for a user.
type Enrollment struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	FullName  string    `json:"full_name" db:"full_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
