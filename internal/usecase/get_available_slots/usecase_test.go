package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpedrosa/Mira-BookingService/internal/availability"
	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

type fakeCatalogRepo struct {
	service *domain.ServiceOffering
	err     error
}

func (f *fakeCatalogRepo) GetServiceByID(_ context.Context, _ int64) (*domain.ServiceOffering, error) {
	return f.service, f.err
}

type fakeSettingsRepo struct {
	policy domain.BusinessPolicy
}

func (f *fakeSettingsRepo) LoadPolicy(_ context.Context, _ string) (domain.BusinessPolicy, error) {
	return f.policy, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByDay(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeBlockRepo struct {
	blocks []domain.BlockedTime
}

func (f *fakeBlockRepo) GetByDate(_ context.Context, _ time.Time) ([]domain.BlockedTime, error) {
	return f.blocks, nil
}

type fakeExceptionRepo struct {
	exceptions []domain.DateException
}

func (f *fakeExceptionRepo) GetByDate(_ context.Context, _ time.Time) ([]domain.DateException, error) {
	return f.exceptions, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testPolicy() domain.BusinessPolicy {
	return domain.BusinessPolicy{
		RecurringDaysOff: map[time.Weekday]bool{
			time.Sunday: true,
			time.Monday: true,
		},
		WorkingHours:      domain.HoursWindow{Start: "10:00", End: "18:30"},
		LaserWorkingHours: domain.HoursWindow{Start: "09:00", End: "19:00"},
		Timezone:          time.UTC,
	}
}

func testService() *domain.ServiceOffering {
	return &domain.ServiceOffering{
		ID:              1,
		Name:            "Limpeza de pele",
		DurationMinutes: 60,
		Price:           35,
		CategorySlug:    "estetica",
		IsActive:        true,
	}
}

func newTestUseCase(
	catalog *fakeCatalogRepo,
	bookings *fakeBookingRepo,
	blocks *fakeBlockRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(
		catalog,
		&fakeSettingsRepo{policy: testPolicy()},
		bookings,
		blocks,
		&fakeExceptionRepo{},
		availability.NewHolidayCalendar(),
		time.UTC,
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	// 2025-06-01 is a Sunday, 2025-06-11 is a plain Wednesday
	// (2025-06-10 is a national holiday, Dia de Portugal)
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	wednesday := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)

	t.Run("open day without bookings yields full grid", func(t *testing.T) {
		uc := newTestUseCase(&fakeCatalogRepo{service: testService()}, &fakeBookingRepo{}, &fakeBlockRepo{}, now)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: wednesday})
		require.NoError(t, err)

		assert.False(t, resp.Closed)
		require.Len(t, resp.Slots, 16)
		assert.Equal(t, types.TimeString("10:00"), resp.Slots[0])
		assert.Equal(t, types.TimeString("17:30"), resp.Slots[15])
	})

	t.Run("existing booking removes overlapping starts", func(t *testing.T) {
		booked := &domain.Booking{
			ID:        7,
			StartTime: "10:00",
			EndTime:   "11:00",
			Status:    domain.StatusConfirmed,
		}
		uc := newTestUseCase(&fakeCatalogRepo{service: testService()},
			&fakeBookingRepo{bookings: []*domain.Booking{booked}}, &fakeBlockRepo{}, now)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: wednesday})
		require.NoError(t, err)

		assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
		assert.NotContains(t, resp.Slots, types.TimeString("10:30"))
		assert.Contains(t, resp.Slots, types.TimeString("11:00"))
	})

	t.Run("recurring day off is closed with reason", func(t *testing.T) {
		sunday := time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeCatalogRepo{service: testService()}, &fakeBookingRepo{}, &fakeBlockRepo{}, now)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: sunday})
		require.NoError(t, err)

		assert.True(t, resp.Closed)
		assert.Equal(t, string(availability.ReasonDayOff), resp.Reason)
		assert.Empty(t, resp.Slots)
	})

	t.Run("today drops already passed starts", func(t *testing.T) {
		lateNow := time.Date(2025, time.June, 11, 17, 0, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeCatalogRepo{service: testService()}, &fakeBookingRepo{}, &fakeBlockRepo{}, lateNow)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: wednesday})
		require.NoError(t, err)

		require.Len(t, resp.Slots, 1)
		assert.Equal(t, types.TimeString("17:30"), resp.Slots[0])
	})

	t.Run("partial block removes covered slots", func(t *testing.T) {
		block := domain.BlockedTime{
			ID:        1,
			BlockDate: wednesday,
			StartTime: "14:00",
			EndTime:   "16:00",
		}
		uc := newTestUseCase(&fakeCatalogRepo{service: testService()}, &fakeBookingRepo{},
			&fakeBlockRepo{blocks: []domain.BlockedTime{block}}, now)

		resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: wednesday})
		require.NoError(t, err)

		assert.NotContains(t, resp.Slots, types.TimeString("14:00"))
		assert.NotContains(t, resp.Slots, types.TimeString("15:30"))
		assert.Contains(t, resp.Slots, types.TimeString("13:00"))
		assert.Contains(t, resp.Slots, types.TimeString("16:00"))
	})

	t.Run("inactive service rejected", func(t *testing.T) {
		service := testService()
		service.IsActive = false
		uc := newTestUseCase(&fakeCatalogRepo{service: service}, &fakeBookingRepo{}, &fakeBlockRepo{}, now)

		_, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: wednesday})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("invalid request rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeCatalogRepo{service: testService()}, &fakeBookingRepo{}, &fakeBlockRepo{}, now)

		_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: wednesday})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
