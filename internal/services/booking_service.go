package services

import (
	"database/sql"
	"errors"

	"github.com/eventstay/hotel-booking-backend/internal/apperrors"
	"github.com/eventstay/hotel-booking-backend/internal/database"
	"github.com/eventstay/hotel-booking-backend/internal/metrics"
	"github.com/eventstay/hotel-booking-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// BookingStore is the persistence boundary of the allocation engine.
// CreateBooking and ReplaceBooking must enforce room capacity atomically:
// two concurrent calls racing for a room's last free slot may not both
// succeed. Capacity violations surface as database.ErrRoomFull and missing
// rows as sql.ErrNoRows.
type BookingStore interface {
	GetActiveBookingByUserID(userID string) (*models.Booking, error)
	GetBookingByID(bookingID string) (*models.Booking, error)
	CountBookingsForRoom(roomID string) (int, error)
	CreateBooking(userID, roomID string) (*models.Booking, error)
	ReplaceBooking(oldBookingID, userID, newRoomID string) (*models.Booking, error)
}

// RoomStore provides room lookups.
type RoomStore interface {
	GetRoomByID(roomID string) (*models.Room, error)
}

// EligibilityChecker gates booking creation on the user's ticket state.
type EligibilityChecker interface {
	CheckEligibility(userID string) (EligibilityVerdict, error)
}

// BookingService is the allocation engine: it applies eligibility, capacity
// and ownership rules and performs the reservation mutations.
type BookingService struct {
	store       BookingStore
	rooms       RoomStore
	eligibility EligibilityChecker
	metrics     *metrics.Metrics
	logger      *logrus.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	store BookingStore,
	rooms RoomStore,
	eligibility EligibilityChecker,
	m *metrics.Metrics,
	logger *logrus.Logger,
) *BookingService {
	return &BookingService{
		store:       store,
		rooms:       rooms,
		eligibility: eligibility,
		metrics:     m,
		logger:      logger,
	}
}

// GetUserBooking returns the user's active booking.
func (s *BookingService) GetUserBooking(userID string) (*models.Booking, error) {
	booking, err := s.store.GetActiveBookingByUserID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user has no booking")
		}
		return nil, apperrors.Unavailable("failed to fetch booking", err)
	}
	return booking, nil
}

// CreateBooking reserves a room for the user. Failure order is fixed:
// ineligibility, then missing room, then exhausted capacity. The occupancy
// check here is a snapshot; the store re-checks capacity atomically, so a
// lost race also comes back as a capacity failure.
func (s *BookingService) CreateBooking(userID, roomID string) (*models.Booking, error) {
	verdict, err := s.eligibility.CheckEligibility(userID)
	if err != nil {
		return nil, err
	}
	if !verdict.Eligible {
		s.metrics.Rejections.WithLabelValues("ineligible").Inc()
		s.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"reason":  verdict.Reason,
		}).Info("Booking rejected: user not eligible")
		return nil, apperrors.PaymentRequired("ticket does not permit hotel booking")
	}

	room, err := s.rooms.GetRoomByID(roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.metrics.Rejections.WithLabelValues("room_not_found").Inc()
			return nil, apperrors.NotFound("room not found")
		}
		return nil, apperrors.Unavailable("failed to fetch room", err)
	}

	occupancy, err := s.store.CountBookingsForRoom(room.ID)
	if err != nil {
		return nil, apperrors.Unavailable("failed to count room occupancy", err)
	}
	if occupancy >= room.Capacity {
		s.metrics.Rejections.WithLabelValues("room_full").Inc()
		return nil, apperrors.Forbidden("room is at capacity")
	}

	booking, err := s.store.CreateBooking(userID, room.ID)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrRoomFull):
			s.metrics.Rejections.WithLabelValues("room_full").Inc()
			return nil, apperrors.Forbidden("room is at capacity")
		case errors.Is(err, sql.ErrNoRows):
			return nil, apperrors.NotFound("room not found")
		default:
			return nil, apperrors.Unavailable("failed to create booking", err)
		}
	}

	s.metrics.BookingsCreated.Inc()
	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"user_id":    userID,
		"room_id":    room.ID,
	}).Info("Booking created")

	return booking, nil
}

// UpdateBooking swaps the user's booking to another room. A missing booking
// and a booking owned by someone else map to the same Forbidden failure so
// booking existence is not leaked across users. The replacement row gets a
// new id; the old identity is gone.
func (s *BookingService) UpdateBooking(userID, bookingID, newRoomID string) (*models.Booking, error) {
	existing, err := s.store.GetBookingByID(bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.metrics.Rejections.WithLabelValues("not_owner").Inc()
			return nil, apperrors.Forbidden("booking cannot be changed by this user")
		}
		return nil, apperrors.Unavailable("failed to fetch booking", err)
	}
	if existing.UserID != userID {
		s.metrics.Rejections.WithLabelValues("not_owner").Inc()
		return nil, apperrors.Forbidden("booking cannot be changed by this user")
	}

	newRoom, err := s.rooms.GetRoomByID(newRoomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.metrics.Rejections.WithLabelValues("room_not_found").Inc()
			return nil, apperrors.NotFound("room not found")
		}
		return nil, apperrors.Unavailable("failed to fetch room", err)
	}

	// The count includes the booking being replaced, so moving within a
	// full room is rejected as well.
	occupancy, err := s.store.CountBookingsForRoom(newRoom.ID)
	if err != nil {
		return nil, apperrors.Unavailable("failed to count room occupancy", err)
	}
	if occupancy >= newRoom.Capacity {
		s.metrics.Rejections.WithLabelValues("room_full").Inc()
		return nil, apperrors.Forbidden("room is at capacity")
	}

	booking, err := s.store.ReplaceBooking(existing.ID, userID, newRoom.ID)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrRoomFull):
			s.metrics.Rejections.WithLabelValues("room_full").Inc()
			return nil, apperrors.Forbidden("room is at capacity")
		case errors.Is(err, sql.ErrNoRows):
			s.metrics.Rejections.WithLabelValues("not_owner").Inc()
			return nil, apperrors.Forbidden("booking cannot be changed by this user")
		default:
			return nil, apperrors.Unavailable("failed to replace booking", err)
		}
	}

	s.metrics.RoomChanges.Inc()
	s.logger.WithFields(logrus.Fields{
		"old_booking_id": existing.ID,
		"new_booking_id": booking.ID,
		"user_id":        userID,
		"room_id":        newRoom.ID,
	}).Info("Booking moved to another room")

	return booking, nil
}
