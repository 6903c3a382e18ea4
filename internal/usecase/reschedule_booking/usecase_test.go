package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpedrosa/Mira-BookingService/internal/availability"
	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	bookingRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/client"
	"github.com/jpedrosa/Mira-BookingService/pkg/ptr"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	byID        *domain.Booking
	dayBookings []*domain.Booking

	rescheduledID    int64
	rescheduledDate  time.Time
	rescheduledStart types.TimeString
	rescheduledEnd   types.TimeString
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.byID == nil || f.byID.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.byID
	return &copied, nil
}

func (f *fakeBookingRepo) GetByDay(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
	return f.dayBookings, nil
}

func (f *fakeBookingRepo) Reschedule(_ context.Context, id int64, date time.Time, start, end types.TimeString) error {
	f.rescheduledID = id
	f.rescheduledDate = date
	f.rescheduledStart = start
	f.rescheduledEnd = end
	return nil
}

type fakeClientRepo struct {
	byUserID *domain.Client
}

func (f *fakeClientRepo) GetByUserID(_ context.Context, _ string) (*domain.Client, error) {
	if f.byUserID == nil {
		return nil, clientRepo.ErrClientNotFound
	}
	return f.byUserID, nil
}

type fakeSettingsRepo struct{}

func (fakeSettingsRepo) LoadPolicy(_ context.Context, _ string) (domain.BusinessPolicy, error) {
	return domain.BusinessPolicy{
		RecurringDaysOff: map[time.Weekday]bool{
			time.Sunday: true,
			time.Monday: true,
		},
		WorkingHours:      domain.HoursWindow{Start: "10:00", End: "18:30"},
		LaserWorkingHours: domain.HoursWindow{Start: "09:00", End: "19:00"},
		Timezone:          time.UTC,
	}, nil
}

type fakeBlockRepo struct{}

func (fakeBlockRepo) GetByDate(_ context.Context, _ time.Time) ([]domain.BlockedTime, error) {
	return nil, nil
}

type fakeExceptionRepo struct{}

func (fakeExceptionRepo) GetByDate(_ context.Context, _ time.Time) ([]domain.DateException, error) {
	return nil, nil
}

type fakeNotifier struct {
	rescheduled *domain.Booking
}

func (f *fakeNotifier) BookingRescheduled(b *domain.Booking) {
	f.rescheduled = b
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func testBooking() *domain.Booking {
	// 2025-06-11 is a plain Wednesday (2025-06-10 is Dia de Portugal)
	return &domain.Booking{
		ID:                     5,
		BookingDate:            time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC),
		StartTime:              "10:00",
		EndTime:                "11:00",
		Status:                 domain.StatusConfirmed,
		ServiceName:            "Limpeza de pele",
		ServiceDurationMinutes: 60,
		ServiceCategory:        "estetica",
		ClientName:             "Maria Silva",
		ClientPhone:            "+351912345678",
	}
}

type testEnv struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	notifier *fakeNotifier
}

func newTestEnv(booking *domain.Booking, dayBookings []*domain.Booking, client *domain.Client, now time.Time) *testEnv {
	env := &testEnv{
		bookings: &fakeBookingRepo{byID: booking, dayBookings: dayBookings},
		notifier: &fakeNotifier{},
	}
	env.uc = NewUseCase(
		env.bookings,
		&fakeClientRepo{byUserID: client},
		fakeSettingsRepo{},
		fakeBlockRepo{},
		fakeExceptionRepo{},
		env.notifier,
		fakeTxManager{},
		availability.NewHolidayCalendar(),
		time.UTC,
		nopLogger{},
	)
	env.uc.timeProvider = &fixedTime{now: now}
	return env
}

func TestExecute(t *testing.T) {
	earlyNow := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	admin := domain.Actor{AdminID: ptr.Ptr(int64(1))}
	// 2025-06-12 is a Thursday
	newDate := time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC)

	t.Run("admin reschedules to a free slot", func(t *testing.T) {
		env := newTestEnv(testBooking(), nil, nil, earlyNow)

		resp, err := env.uc.Execute(context.Background(), &Request{
			Actor:        admin,
			BookingID:    5,
			NewDate:      newDate,
			NewStartTime: "14:00",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(5), env.bookings.rescheduledID)
		assert.Equal(t, types.TimeString("14:00"), env.bookings.rescheduledStart)
		assert.Equal(t, types.TimeString("15:00"), env.bookings.rescheduledEnd)
		assert.Equal(t, "15:00", resp.EndTime.String())
		require.NotNil(t, env.notifier.rescheduled)
		assert.Equal(t, newDate, env.notifier.rescheduled.BookingDate)
	})

	t.Run("own interval is excluded from the conflict check", func(t *testing.T) {
		booking := testBooking()
		env := newTestEnv(booking, []*domain.Booking{booking}, nil, earlyNow)

		// 10:30 overlaps the booking's original 10:00-11:00 interval
		_, err := env.uc.Execute(context.Background(), &Request{
			Actor:        admin,
			BookingID:    5,
			NewDate:      booking.BookingDate,
			NewStartTime: "10:30",
		})
		assert.NoError(t, err)
	})

	t.Run("conflict with another booking rejected", func(t *testing.T) {
		other := &domain.Booking{
			ID:        9,
			StartTime: "14:00",
			EndTime:   "15:00",
			Status:    domain.StatusConfirmed,
		}
		env := newTestEnv(testBooking(), []*domain.Booking{other}, nil, earlyNow)

		_, err := env.uc.Execute(context.Background(), &Request{
			Actor:        admin,
			BookingID:    5,
			NewDate:      newDate,
			NewStartTime: "14:30",
		})
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("cancelled booking cannot be rescheduled", func(t *testing.T) {
		booking := testBooking()
		booking.Status = domain.StatusCancelled
		env := newTestEnv(booking, nil, nil, earlyNow)

		_, err := env.uc.Execute(context.Background(), &Request{
			Actor:        admin,
			BookingID:    5,
			NewDate:      newDate,
			NewStartTime: "14:00",
		})
		assert.ErrorIs(t, err, ErrBookingCancelled)
	})

	t.Run("unknown booking rejected", func(t *testing.T) {
		env := newTestEnv(testBooking(), nil, nil, earlyNow)

		_, err := env.uc.Execute(context.Background(), &Request{
			Actor:        admin,
			BookingID:    99,
			NewDate:      newDate,
			NewStartTime: "14:00",
		})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("client within change window rejected", func(t *testing.T) {
		lateNow := time.Date(2025, time.June, 10, 20, 0, 0, 0, time.UTC)
		owner := &domain.Client{Phone: "+351912345678", UserID: ptr.Ptr("user-1")}
		env := newTestEnv(testBooking(), nil, owner, lateNow)

		_, err := env.uc.Execute(context.Background(), &Request{
			Actor:        domain.Actor{UserID: ptr.Ptr("user-1")},
			BookingID:    5,
			NewDate:      newDate,
			NewStartTime: "14:00",
		})
		assert.ErrorIs(t, err, ErrChangeWindowClosed)
	})

	t.Run("client new slot inside change window rejected", func(t *testing.T) {
		// Original start is far away, but the target slot is tomorrow morning
		now := time.Date(2025, time.June, 11, 18, 0, 0, 0, time.UTC)
		booking := testBooking()
		booking.BookingDate = time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)
		owner := &domain.Client{Phone: "+351912345678", UserID: ptr.Ptr("user-1")}
		env := newTestEnv(booking, nil, owner, now)

		_, err := env.uc.Execute(context.Background(), &Request{
			Actor:        domain.Actor{UserID: ptr.Ptr("user-1")},
			BookingID:    5,
			NewDate:      newDate,
			NewStartTime: "10:00",
		})
		assert.ErrorIs(t, err, ErrChangeWindowClosed)
	})

	t.Run("admin ignores the change window", func(t *testing.T) {
		lateNow := time.Date(2025, time.June, 10, 20, 0, 0, 0, time.UTC)
		env := newTestEnv(testBooking(), nil, nil, lateNow)

		_, err := env.uc.Execute(context.Background(), &Request{
			Actor:        admin,
			BookingID:    5,
			NewDate:      newDate,
			NewStartTime: "14:00",
		})
		assert.NoError(t, err)
	})

	t.Run("foreign booking rejected for client", func(t *testing.T) {
		other := &domain.Client{Phone: "+351999999999", UserID: ptr.Ptr("user-2")}
		env := newTestEnv(testBooking(), nil, other, earlyNow)

		_, err := env.uc.Execute(context.Background(), &Request{
			Actor:        domain.Actor{UserID: ptr.Ptr("user-2")},
			BookingID:    5,
			NewDate:      newDate,
			NewStartTime: "14:00",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("closed date rejected", func(t *testing.T) {
		env := newTestEnv(testBooking(), nil, nil, earlyNow)

		_, err := env.uc.Execute(context.Background(), &Request{
			Actor:        admin,
			BookingID:    5,
			NewDate:      time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC), // Sunday
			NewStartTime: "14:00",
		})
		assert.ErrorIs(t, err, ErrDateClosed)
	})
}
