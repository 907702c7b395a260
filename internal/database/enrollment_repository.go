package database

import (
	"github.com/eventstay/hotel-booking-backend/internal/models"
)

// EnrollmentRepository handles database operations for the enrollments
// table. Enrollment rows are owned by the registration subsystem and are
// read-only here.
type EnrollmentRepository struct {
	db DB
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(db DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// GetEnrollmentByUserID retrieves a user's enrollment.
func (r *EnrollmentRepository) GetEnrollmentByUserID(userID string) (*models.Enrollment, error) {
	query := `
		SELECT id, user_id, full_name, created_at, updated_at
		FROM enrollments
		WHERE user_id = $1
	`

	enrollment := &models.Enrollment{}
	err := r.db.QueryRow(query, userID).Scan(
		&enrollment.ID, &enrollment.UserID, &enrollment.FullName,
		&enrollment.CreatedAt, &enrollment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}
