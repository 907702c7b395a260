package services

import (
	"database/sql"
	"errors"

	"github.com/eventstay/hotel-booking-backend/internal/apperrors"
	"github.com/eventstay/hotel-booking-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// EligibilityReason explains why a user may not book a room. The reason is
// for logs and metrics only; callers collapse every ineligible verdict into
// a single payment-required failure.
type EligibilityReason string

const (
	ReasonNone            EligibilityReason = "NONE"
	ReasonNotEnrolled     EligibilityReason = "NOT_ENROLLED"
	ReasonNoTicket        EligibilityReason = "NO_TICKET"
	ReasonTicketUnpaid    EligibilityReason = "TICKET_UNPAID"
	ReasonRemoteTicket    EligibilityReason = "REMOTE_TICKET"
	ReasonNoHotelIncluded EligibilityReason = "NO_HOTEL_INCLUDED"
)

// EligibilityVerdict is the derived yes/no decision on whether a user's
// ticket permits hotel booking. Never stored.
type EligibilityVerdict struct {
	Eligible bool
	Reason   EligibilityReason
}

// EnrollmentStore provides enrollment lookups.
type EnrollmentStore interface {
	GetEnrollmentByUserID(userID string) (*models.Enrollment, error)
}

// TicketStore provides ticket lookups.
type TicketStore interface {
	GetTicketByEnrollmentID(enrollmentID string) (*models.Ticket, error)
}

// EligibilityService decides whether a user holds a paid, in-person ticket
// that includes hotel accommodation.
type EligibilityService struct {
	enrollments EnrollmentStore
	tickets     TicketStore
	logger      *logrus.Logger
}

// NewEligibilityService creates a new EligibilityService.
func NewEligibilityService(enrollments EnrollmentStore, tickets TicketStore, logger *logrus.Logger) *EligibilityService {
	return &EligibilityService{
		enrollments: enrollments,
		tickets:     tickets,
		logger:      logger,
	}
}

// CheckEligibility builds the verdict for a user. A missing enrollment or
// ticket is an ineligible verdict, not an error; only infrastructure
// failures return a non-nil error.
func (s *EligibilityService) CheckEligibility(userID string) (EligibilityVerdict, error) {
	enrollment, err := s.enrollments.GetEnrollmentByUserID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EligibilityVerdict{Reason: ReasonNotEnrolled}, nil
		}
		return EligibilityVerdict{}, apperrors.Unavailable("failed to fetch enrollment", err)
	}

	ticket, err := s.tickets.GetTicketByEnrollmentID(enrollment.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EligibilityVerdict{Reason: ReasonNoTicket}, nil
		}
		return EligibilityVerdict{}, apperrors.Unavailable("failed to fetch ticket", err)
	}

	switch {
	case ticket.Status != models.TicketStatusPaid:
		return EligibilityVerdict{Reason: ReasonTicketUnpaid}, nil
	case ticket.TicketType.IsRemote:
		return EligibilityVerdict{Reason: ReasonRemoteTicket}, nil
	case !ticket.TicketType.IncludesHotel:
		return EligibilityVerdict{Reason: ReasonNoHotelIncluded}, nil
	}

	return EligibilityVerdict{Eligible: true, Reason: ReasonNone}, nil
}
