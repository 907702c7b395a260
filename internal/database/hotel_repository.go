package database

import (
	"github.com/eventstay/hotel-booking-backend/internal/models"
)

// HotelRepository handles database operations for the hotels table.
type HotelRepository struct {
	db DB
}

// NewHotelRepository creates a new HotelRepository.
func NewHotelRepository(db DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// ListHotels retrieves all hotels ordered by name.
func (r *HotelRepository) ListHotels() ([]models.Hotel, error) {
	query := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		ORDER BY name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := []models.Hotel{}
	for rows.Next() {
		var hotel models.Hotel
		err := rows.Scan(&hotel.ID, &hotel.Name, &hotel.Image, &hotel.CreatedAt, &hotel.UpdatedAt)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, hotel)
	}

	return hotels, rows.Err()
}

// GetHotelByID retrieves a hotel by id.
func (r *HotelRepository) GetHotelByID(hotelID string) (*models.Hotel, error) {
	query := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		WHERE id = $1
	`

	hotel := &models.Hotel{}
	err := r.db.QueryRow(query, hotelID).Scan(
		&hotel.ID, &hotel.Name, &hotel.Image, &hotel.CreatedAt, &hotel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return hotel, nil
}
