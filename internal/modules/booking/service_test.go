package booking

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain"
	"venuebook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByUserID(ctx context.Context, userID int64) ([]repository.UserBookingRow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.UserBookingRow), args.Error(1)
}

type MockVenueReader struct {
	mock.Mock
}

func (m *MockVenueReader) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func approvedVenue(id int64, price float64) *domain.Venue {
	return &domain.Venue{
		ID:            id,
		OwnerID:       1,
		Name:          "Grand Ballroom",
		Type:          domain.VenueHall,
		PricePerNight: price,
		Status:        domain.VenueApproved,
	}
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	mockVenues.On("GetByID", mock.Anything, int64(10)).Return(approvedVenue(10, 100.0), nil)
	mockBookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockVenues)

	req := CreateBookingRequest{
		VenueID:      10,
		CheckInDate:  "2026-12-01",
		CheckOutDate: "2026-12-03",
		TotalPrice:   200,
	}

	b, err := service.CreateBooking(context.Background(), 7, req)

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, 200.0, b.TotalPrice)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
}

func TestService_CreateBooking_PriceMismatch(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	mockVenues.On("GetByID", mock.Anything, int64(10)).Return(approvedVenue(10, 100.0), nil)

	service := NewService(mockBookings, mockVenues)

	req := CreateBookingRequest{
		VenueID:      10,
		CheckInDate:  "2026-12-01",
		CheckOutDate: "2026-12-03",
		TotalPrice:   150, // server computes 200
	}

	_, err := service.CreateBooking(context.Background(), 7, req)
	assert.ErrorIs(t, err, ErrPriceMismatch)
	mockBookings.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_DateConflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	mockVenues.On("GetByID", mock.Anything, int64(10)).Return(approvedVenue(10, 100.0), nil)
	mockBookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(repository.ErrDateConflict)

	service := NewService(mockBookings, mockVenues)

	req := CreateBookingRequest{
		VenueID:      10,
		CheckInDate:  "2026-12-01",
		CheckOutDate: "2026-12-03",
		TotalPrice:   200,
	}

	_, err := service.CreateBooking(context.Background(), 7, req)
	assert.ErrorIs(t, err, ErrDateConflict)
}

func TestService_CreateBooking_InvalidDates(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockVenueReader))

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"bad format", "01-12-2026", "2026-12-03"},
		{"checkout before checkin", "2026-12-03", "2026-12-01"},
		{"same day", "2026-12-01", "2026-12-01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateBooking(context.Background(), 7, CreateBookingRequest{
				VenueID:      10,
				CheckInDate:  tc.checkIn,
				CheckOutDate: tc.checkOut,
				TotalPrice:   200,
			})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestService_CreateBooking_VenueNotApproved(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	pending := approvedVenue(10, 100.0)
	pending.Status = domain.VenuePending
	mockVenues.On("GetByID", mock.Anything, int64(10)).Return(pending, nil)

	service := NewService(mockBookings, mockVenues)

	_, err := service.CreateBooking(context.Background(), 7, CreateBookingRequest{
		VenueID:      10,
		CheckInDate:  "2026-12-01",
		CheckOutDate: "2026-12-03",
		TotalPrice:   200,
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestService_CreateBooking_VenueMissing(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	mockVenues.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, mockVenues)

	_, err := service.CreateBooking(context.Background(), 7, CreateBookingRequest{
		VenueID:      404,
		CheckInDate:  "2026-12-01",
		CheckOutDate: "2026-12-03",
		TotalPrice:   200,
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestService_UserBookings_SelfOrAdmin(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueReader)

	rows := []repository.UserBookingRow{{ID: 1, VenueName: "Grand Ballroom"}}
	mockBookings.On("GetByUserID", mock.Anything, int64(7)).Return(rows, nil)

	service := NewService(mockBookings, mockVenues)

	// self
	got, err := service.UserBookings(context.Background(), 7, string(domain.RoleCustomer), 7)
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	// admin reading someone else
	got, err = service.UserBookings(context.Background(), 1, string(domain.RoleAdmin), 7)
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	// stranger
	_, err = service.UserBookings(context.Background(), 8, string(domain.RoleCustomer), 7)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBooking_Nights(t *testing.T) {
	checkIn := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	b := &domain.Booking{CheckInDate: checkIn, CheckOutDate: checkIn.AddDate(0, 0, 2)}
	assert.Equal(t, 2, b.Nights())

	b.CheckOutDate = checkIn.Add(36 * time.Hour) // partial day rounds up
	assert.Equal(t, 2, b.Nights())
}
