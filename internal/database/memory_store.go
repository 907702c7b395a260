package database

import (
	"database/sql"
	"sync"
	"time"

	"github.com/eventstay/hotel-booking-backend/internal/models"
	"github.com/google/uuid"
)

// MemoryStore is an in-memory booking store with the same semantics as the
// Postgres repositories: capacity checks and inserts are atomic under a
// single mutex, booking replacement is all-or-nothing, and missing rows
// surface as sql.ErrNoRows. It backs tests and local development.
type MemoryStore struct {
	mu       sync.Mutex
	rooms    map[string]models.Room
	bookings map[string]models.Booking
	order    map[string]uint64 // insertion sequence, tie-break for the active booking lookup
	seq      uint64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:    make(map[string]models.Room),
		bookings: make(map[string]models.Booking),
		order:    make(map[string]uint64),
	}
}

// AddRoom seeds a room into the store.
func (s *MemoryStore) AddRoom(room models.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room
}

// GetRoomByID retrieves a room by id.
func (s *MemoryStore) GetRoomByID(roomID string) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &room, nil
}

// GetActiveBookingByUserID retrieves the user's current booking, most
// recently created first.
func (s *MemoryStore) GetActiveBookingByUserID(userID string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found *models.Booking
	var foundSeq uint64
	for id, b := range s.bookings {
		if b.UserID != userID {
			continue
		}
		if found == nil || s.order[id] > foundSeq {
			booking := b
			found = &booking
			foundSeq = s.order[id]
		}
	}
	if found == nil {
		return nil, sql.ErrNoRows
	}
	return found, nil
}

// GetBookingByID retrieves a booking by id.
func (s *MemoryStore) GetBookingByID(bookingID string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &booking, nil
}

// CountBookingsForRoom returns the room's current occupancy.
func (s *MemoryStore) CountBookingsForRoom(roomID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked(roomID), nil
}

// CreateBooking inserts a booking iff the room still has a free slot. The
// mutex is held across the check and the insert.
func (s *MemoryStore) CreateBooking(userID, roomID string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if s.countLocked(roomID) >= room.Capacity {
		return nil, ErrRoomFull
	}

	return s.insertLocked(userID, roomID), nil
}

// ReplaceBooking atomically deletes the old booking and creates a new one
// with a fresh id. The occupancy check counts the old booking too.
func (s *MemoryStore) ReplaceBooking(oldBookingID, userID, newRoomID string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[newRoomID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if s.countLocked(newRoomID) >= room.Capacity {
		return nil, ErrRoomFull
	}

	old, ok := s.bookings[oldBookingID]
	if !ok || old.UserID != userID {
		return nil, sql.ErrNoRows
	}
	delete(s.bookings, oldBookingID)
	delete(s.order, oldBookingID)

	return s.insertLocked(userID, newRoomID), nil
}

func (s *MemoryStore) countLocked(roomID string) int {
	count := 0
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			count++
		}
	}
	return count
}

func (s *MemoryStore) insertLocked(userID, roomID string) *models.Booking {
	now := time.Now()
	booking := models.Booking{
		ID:        uuid.New().String(),
		UserID:    userID,
		RoomID:    roomID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.seq++
	s.bookings[booking.ID] = booking
	s.order[booking.ID] = s.seq
	return &booking
}
