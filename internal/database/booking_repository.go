package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/eventstay/hotel-booking-backend/internal/models"
	"github.com/google/uuid"
)

// ErrRoomFull is returned when a booking would exceed the target room's
// capacity. The check and the insert run under a room-row lock, so two
// requests racing for the last slot cannot both succeed.
var ErrRoomFull = errors.New("room is at capacity")

// BookingRepository handles database operations for the bookings table.
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository.
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// GetActiveBookingByUserID retrieves the user's current booking. When more
// than one row exists the most recently created wins.
func (r *BookingRepository) GetActiveBookingByUserID(userID string) (*models.Booking, error) {
	query := `
		SELECT id, user_id, room_id, created_at, updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	return scanBooking(r.db.QueryRow(query, userID))
}

// GetBookingByID retrieves a booking by id.
func (r *BookingRepository) GetBookingByID(bookingID string) (*models.Booking, error) {
	query := `
		SELECT id, user_id, room_id, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	return scanBooking(r.db.QueryRow(query, bookingID))
}

// CountBookingsForRoom returns the room's current occupancy.
func (r *BookingRepository) CountBookingsForRoom(roomID string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id = $1`

	var count int
	err := r.db.QueryRow(query, roomID).Scan(&count)
	return count, err
}

// CreateBooking inserts a booking for the user in the given room. The room
// row is locked for the duration of the transaction so the occupancy count
// and the insert are atomic with respect to concurrent requests for the
// same room. Returns ErrRoomFull when occupancy already equals capacity and
// sql.ErrNoRows when the room does not exist.
func (r *BookingRepository) CreateBooking(userID, roomID string) (*models.Booking, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := checkRoomHasSpace(tx, roomID); err != nil {
		return nil, err
	}

	booking, err := insertBooking(tx, userID, roomID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	return booking, nil
}

// ReplaceBooking deletes the user's existing booking and creates a new one
// in the target room as a single transaction, so a crash can never leave
// the user without a booking. The replacement gets a fresh id. The
// occupancy check counts the old booking too; swapping within a full room
// is rejected. Returns sql.ErrNoRows when the old booking is missing or not
// owned by the user.
func (r *BookingRepository) ReplaceBooking(oldBookingID, userID, newRoomID string) (*models.Booking, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := checkRoomHasSpace(tx, newRoomID); err != nil {
		return nil, err
	}

	result, err := tx.Exec(`DELETE FROM bookings WHERE id = $1 AND user_id = $2`, oldBookingID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, sql.ErrNoRows
	}

	booking, err := insertBooking(tx, userID, newRoomID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking replacement: %w", err)
	}

	return booking, nil
}

// checkRoomHasSpace locks the room row and verifies occupancy is below
// capacity. The lock is held until the surrounding transaction ends.
func checkRoomHasSpace(tx *sql.Tx, roomID string) error {
	var capacity int
	err := tx.QueryRow(`SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`, roomID).Scan(&capacity)
	if err != nil {
		return err
	}

	var occupancy int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomID).Scan(&occupancy); err != nil {
		return fmt.Errorf("failed to count room occupancy: %w", err)
	}

	if occupancy >= capacity {
		return ErrRoomFull
	}
	return nil
}

func insertBooking(tx *sql.Tx, userID, roomID string) (*models.Booking, error) {
	booking := &models.Booking{
		ID:     uuid.New().String(),
		UserID: userID,
		RoomID: roomID,
	}

	err := tx.QueryRow(`
		INSERT INTO bookings (id, user_id, room_id)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`, booking.ID, booking.UserID, booking.RoomID).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

func scanBooking(row scanner) (*models.Booking, error) {
	booking := &models.Booking{}
	err := row.Scan(&booking.ID, &booking.UserID, &booking.RoomID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return booking, nil
}
