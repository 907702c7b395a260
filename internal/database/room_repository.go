package database

import (
	"github.com/eventstay/hotel-booking-backend/internal/models"
)

// RoomRepository handles database operations for the rooms table.
type RoomRepository struct {
	db DB
}

// NewRoomRepository creates a new RoomRepository.
func NewRoomRepository(db DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetRoomByID retrieves a room by id.
func (r *RoomRepository) GetRoomByID(roomID string) (*models.Room, error) {
	query := `
		SELECT id, name, capacity, hotel_id, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	room := &models.Room{}
	err := r.db.QueryRow(query, roomID).Scan(
		&room.ID, &room.Name, &room.Capacity, &room.HotelID,
		&room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return room, nil
}

// GetRoomsByHotelID retrieves all rooms of a hotel ordered by name.
func (r *RoomRepository) GetRoomsByHotelID(hotelID string) ([]models.Room, error) {
	query := `
		SELECT id, name, capacity, hotel_id, created_at, updated_at
		FROM rooms
		WHERE hotel_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(query, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []models.Room{}
	for rows.Next() {
		var room models.Room
		err := rows.Scan(
			&room.ID, &room.Name, &room.Capacity, &room.HotelID,
			&room.CreatedAt, &room.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}
