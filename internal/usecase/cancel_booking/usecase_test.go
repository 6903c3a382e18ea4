package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	bookingRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/client"
	"github.com/jpedrosa/Mira-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	byID        *domain.Booking
	cancelledID int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.byID == nil || f.byID.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.byID
	return &copied, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	f.cancelledID = id
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

type fakeNotifier struct {
	cancelled *domain.Booking
}

func (f *fakeNotifier) BookingCancelled(b *domain.Booking) {
	f.cancelled = b
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
	return &domain.Booking{
		ID:          5,
		BookingDate: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      domain.StatusConfirmed,
		ServiceName: "Limpeza de pele",
		ClientName:  "Maria Silva",
		ClientPhone: "+351912345678",
	}
}

type testEnv struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	notifier *fakeNotifier
}

func newTestEnv(booking *domain.Booking, client *domain.Client, now time.Time) *testEnv {
	env := &testEnv{
		bookings: &fakeBookingRepo{byID: booking},
		notifier: &fakeNotifier{},
	}
	env.uc = NewUseCase(
		env.bookings,
		&fakeClientRepo{byUserID: client},
		env.notifier,
		time.UTC,
		nopLogger{},
	)
	env.uc.timeProvider = &fixedTime{now: now}
	return env
}

func TestExecute(t *testing.T) {
	earlyNow := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	admin := domain.Actor{AdminID: ptr.Ptr(int64(1))}

	t.Run("admin cancels booking", func(t *testing.T) {
		env := newTestEnv(testBooking(), nil, earlyNow)

		resp, err := env.uc.Execute(context.Background(), &Request{Actor: admin, BookingID: 5})
		require.NoError(t, err)

		assert.Equal(t, int64(5), env.bookings.cancelledID)
		assert.Equal(t, "cancelled", resp.Status)
		require.NotNil(t, env.notifier.cancelled)
		assert.Equal(t, domain.StatusCancelled, env.notifier.cancelled.Status)
	})

	t.Run("owner cancels outside change window", func(t *testing.T) {
		owner := &domain.Client{Phone: "+351912345678", UserID: ptr.Ptr("user-1")}
		env := newTestEnv(testBooking(), owner, earlyNow)

		_, err := env.uc.Execute(context.Background(), &Request{
			Actor:     domain.Actor{UserID: ptr.Ptr("user-1")},
			BookingID: 5,
		})
		assert.NoError(t, err)
	})

	t.Run("client within change window rejected", func(t *testing.T) {
		lateNow := time.Date(2025, time.June, 9, 20, 0, 0, 0, time.UTC)
		owner := &domain.Client{Phone: "+351912345678", UserID: ptr.Ptr("user-1")}
		env := newTestEnv(testBooking(), owner, lateNow)

		_, err := env.uc.Execute(context.Background(), &Request{
			Actor:     domain.Actor{UserID: ptr.Ptr("user-1")},
			BookingID: 5,
		})
		assert.ErrorIs(t, err, ErrChangeWindowClosed)
	})

	t.Run("admin ignores the change window", func(t *testing.T) {
		lateNow := time.Date(2025, time.June, 9, 20, 0, 0, 0, time.UTC)
		env := newTestEnv(testBooking(), nil, lateNow)

		_, err := env.uc.Execute(context.Background(), &Request{Actor: admin, BookingID: 5})
		assert.NoError(t, err)
	})

	t.Run("foreign booking rejected for client", func(t *testing.T) {
		other := &domain.Client{Phone: "+351999999999", UserID: ptr.Ptr("user-2")}
		env := newTestEnv(testBooking(), other, earlyNow)

		_, err := env.uc.Execute(context.Background(), &Request{
			Actor:     domain.Actor{UserID: ptr.Ptr("user-2")},
			BookingID: 5,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("double cancel rejected", func(t *testing.T) {
		booking := testBooking()
		booking.Status = domain.StatusCancelled
		env := newTestEnv(booking, nil, earlyNow)

		_, err := env.uc.Execute(context.Background(), &Request{Actor: admin, BookingID: 5})
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
	})

	t.Run("unknown booking rejected", func(t *testing.T) {
		env := newTestEnv(testBooking(), nil, earlyNow)

		_, err := env.uc.Execute(context.Background(), &Request{Actor: admin, BookingID: 99})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
