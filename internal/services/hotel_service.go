package services

import (
	"database/sql"
	"errors"

	"github.com/eventstay/hotel-booking-backend/internal/apperrors"
	"github.com/eventstay/hotel-booking-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// HotelStore provides hotel catalog lookups.
type HotelStore interface {
	ListHotels() ([]models.Hotel, error)
	GetHotelByID(hotelID string) (*models.Hotel, error)
}

// RoomLister enumerates a hotel's rooms.
type RoomLister interface {
	GetRoomsByHotelID(hotelID string) ([]models.Room, error)
}

// HotelService serves the hotel catalog. Browsing requires a paid ticket:
// users without a ticket get NotFound, users with an unpaid ticket get
// PaymentRequired.
type HotelService struct {
	hotels      HotelStore
	rooms       RoomLister
	enrollments EnrollmentStore
	tickets     TicketStore
	logger      *logrus.Logger
}

// NewHotelService creates a new HotelService.
func NewHotelService(
	hotels HotelStore,
	rooms RoomLister,
	enrollments EnrollmentStore,
	tickets TicketStore,
	logger *logrus.Logger,
) *HotelService {
	return &HotelService{
		hotels:      hotels,
		rooms:       rooms,
		enrollments: enrollments,
		tickets:     tickets,
		logger:      logger,
	}
}

// ListHotels returns the hotel catalog for a paying ticket holder.
func (s *HotelService) ListHotels(userID string) ([]models.Hotel, error) {
	if err := s.requirePaidTicket(userID); err != nil {
		return nil, err
	}

	hotels, err := s.hotels.ListHotels()
	if err != nil {
		return nil, apperrors.Unavailable("failed to list hotels", err)
	}
	return hotels, nil
}

// GetHotelWithRooms returns one hotel and its rooms for a paying ticket
// holder.
func (s *HotelService) GetHotelWithRooms(userID, hotelID string) (*models.HotelWithRooms, error) {
	if err := s.requirePaidTicket(userID); err != nil {
		return nil, err
	}

	hotel, err := s.hotels.GetHotelByID(hotelID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("hotel not found")
		}
		return nil, apperrors.Unavailable("failed to fetch hotel", err)
	}

	rooms, err := s.rooms.GetRoomsByHotelID(hotel.ID)
	if err != nil {
		return nil, apperrors.Unavailable("failed to list rooms", err)
	}

	return &models.HotelWithRooms{Hotel: *hotel, Rooms: rooms}, nil
}

func (s *HotelService) requirePaidTicket(userID string) error {
	enrollment, err := s.enrollments.GetEnrollmentByUserID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("user has no ticket")
		}
		return apperrors.Unavailable("failed to fetch enrollment", err)
	}

	ticket, err := s.tickets.GetTicketByEnrollmentID(enrollment.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("user has no ticket")
		}
		return apperrors.Unavailable("failed to fetch ticket", err)
	}

	if ticket.Status != models.TicketStatusPaid {
		return apperrors.PaymentRequired("ticket is not paid")
	}
	return nil
}
