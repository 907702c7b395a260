package models

import "time"

// Booking represents a user's current room assignment. A user holds at most
// one active booking; a successful room change replaces the row, so the
// booking id never survives a swap.
type Booking struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	RoomID    string    `json:"room_id" db:"room_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateBookingRequest is the payload for reserving a room.
type CreateBookingRequest struct {
	RoomID string `json:"room_id" binding:"required"`
}

// UpdateBookingRequest is the payload for swapping to another room.
type UpdateBookingRequest struct {
	RoomID string `json:"room_id" binding:"required"`
}

// CreateBookingResponse returns the id of the freshly created booking.
type CreateBookingResponse struct {
	ID string `json:"id"`
}

// UpdateBookingResponse returns the id of the replacement booking.
type UpdateBookingResponse struct {
	BookingID string `json:"booking_id"`
}
