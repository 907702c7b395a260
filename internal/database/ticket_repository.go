package database

import (
	"github.com/eventstay/hotel-booking-backend/internal/models"
)

// TicketRepository handles database operations for the tickets and
// ticket_types tables. Tickets are read-only eligibility facts here.
type TicketRepository struct {
	db DB
}

// NewTicketRepository creates a new TicketRepository.
func NewTicketRepository(db DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// GetTicketByEnrollmentID retrieves the ticket tied to an enrollment, with
// its type joined in.
func (r *TicketRepository) GetTicketByEnrollmentID(enrollmentID string) (*models.Ticket, error) {
	query := `
		SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
			   tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = $1
	`

	ticket := &models.Ticket{}
	err := r.db.QueryRow(query, enrollmentID).Scan(
		&ticket.ID, &ticket.EnrollmentID, &ticket.TicketTypeID, &ticket.Status,
		&ticket.CreatedAt, &ticket.UpdatedAt,
		&ticket.TicketType.ID, &ticket.TicketType.Name, &ticket.TicketType.Price,
		&ticket.TicketType.IsRemote, &ticket.TicketType.IncludesHotel,
		&ticket.TicketType.CreatedAt, &ticket.TicketType.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return ticket, nil
}

// ListTicketTypes retrieves all ticket types ordered by price.
func (r *TicketRepository) ListTicketTypes() ([]models.TicketType, error) {
	query := `
		SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		FROM ticket_types
		ORDER BY price
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []models.TicketType{}
	for rows.Next() {
		var tt models.TicketType
		err := rows.Scan(&tt.ID, &tt.Name, &tt.Price, &tt.IsRemote, &tt.IncludesHotel, &tt.CreatedAt, &tt.UpdatedAt)
		if err != nil {
			return nil, err
		}
		types = append(types, tt)
	}

	return types, rows.Err()
}
