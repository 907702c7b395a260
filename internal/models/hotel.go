package models

import "time"

// Hotel is a catalog entry. Read-only to the booking engine.
type Hotel struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Image     string    `json:"image" db:"image"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Room is a bookable unit within a hotel. Capacity bounds how many active
// bookings may reference the room.
type Room struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Capacity  int       `json:"capacity" db:"capacity"`
	HotelID   string    `json:"hotel_id" db:"hotel_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HotelWithRooms is the detail view returned by GET /hotels/:hotelId.
type HotelWithRooms struct {
	Hotel
	Rooms []Room `json:"rooms"`
}
