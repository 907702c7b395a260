package services

import (
	"database/sql"
	"testing"

	"github.com/eventstay/hotel-booking-backend/internal/apperrors"
	"github.com/eventstay/hotel-booking-backend/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHotelStore struct {
	hotels []models.Hotel
}

func (f *fakeHotelStore) ListHotels() ([]models.Hotel, error) {
	return f.hotels, nil
}

func (f *fakeHotelStore) GetHotelByID(hotelID string) (*models.Hotel, error) {
	for _, h := range f.hotels {
		if h.ID == hotelID {
			hotel := h
			return &hotel, nil
		}
	}
	return nil, sql.ErrNoRows
}

type fakeRoomLister struct {
	rooms []models.Room
}

func (f *fakeRoomLister) GetRoomsByHotelID(hotelID string) ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestHotelService(hotels *fakeHotelStore, rooms *fakeRoomLister, ticket *models.Ticket, ticketErr error) *HotelService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	enrollments := &fakeEnrollmentStore{enrollment: &models.Enrollment{ID: uuid.New().String()}}
	if ticketErr != nil && ticket == nil {
		// Missing ticket is modeled at the ticket store; enrollment exists.
		return NewHotelService(hotels, rooms, enrollments, &fakeTicketStore{err: ticketErr}, logger)
	}
	return NewHotelService(hotels, rooms, enrollments, &fakeTicketStore{ticket: ticket}, logger)
}

func TestListHotels(t *testing.T) {
	hotels := &fakeHotelStore{hotels: []models.Hotel{
		{ID: uuid.New().String(), Name: "Grand Plaza"},
		{ID: uuid.New().String(), Name: "Seaside Inn"},
	}}

	t.Run("Paid Ticket", func(t *testing.T) {
		service := newTestHotelService(hotels, &fakeRoomLister{}, makeTicket(models.TicketStatusPaid, false, true), nil)

		got, err := service.ListHotels(uuid.New().String())
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("No Ticket", func(t *testing.T) {
		service := newTestHotelService(hotels, &fakeRoomLister{}, nil, sql.ErrNoRows)

		_, err := service.ListHotels(uuid.New().String())
		assertKind(t, err, apperrors.KindNotFound)
	})

	t.Run("Unpaid Ticket", func(t *testing.T) {
		service := newTestHotelService(hotels, &fakeRoomLister{}, makeTicket(models.TicketStatusReserved, false, true), nil)

		_, err := service.ListHotels(uuid.New().String())
		assertKind(t, err, apperrors.KindPaymentRequired)
	})

	// Browsing only needs a paid ticket; remote tickets can still look.
	t.Run("Paid Remote Ticket", func(t *testing.T) {
		service := newTestHotelService(hotels, &fakeRoomLister{}, makeTicket(models.TicketStatusPaid, true, false), nil)

		got, err := service.ListHotels(uuid.New().String())
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestGetHotelWithRooms(t *testing.T) {
	hotelID := uuid.New().String()
	hotels := &fakeHotelStore{hotels: []models.Hotel{{ID: hotelID, Name: "Grand Plaza"}}}
	rooms := &fakeRoomLister{rooms: []models.Room{
		{ID: uuid.New().String(), Name: "101", Capacity: 2, HotelID: hotelID},
		{ID: uuid.New().String(), Name: "102", Capacity: 3, HotelID: hotelID},
	}}

	t.Run("Success", func(t *testing.T) {
		service := newTestHotelService(hotels, rooms, makeTicket(models.TicketStatusPaid, false, true), nil)

		got, err := service.GetHotelWithRooms(uuid.New().String(), hotelID)
		require.NoError(t, err)
		assert.Equal(t, hotelID, got.ID)
		assert.Len(t, got.Rooms, 2)
	})

	t.Run("Unknown Hotel", func(t *testing.T) {
		service := newTestHotelService(hotels, rooms, makeTicket(models.TicketStatusPaid, false, true), nil)

		_, err := service.GetHotelWithRooms(uuid.New().String(), uuid.New().String())
		assertKind(t, err, apperrors.KindNotFound)
	})

	t.Run("Unpaid Ticket", func(t *testing.T) {
		service := newTestHotelService(hotels, rooms, makeTicket(models.TicketStatusReserved, false, true), nil)

		_, err := service.GetHotelWithRooms(uuid.New().String(), hotelID)
		assertKind(t, err, apperrors.KindPaymentRequired)
	})
}
