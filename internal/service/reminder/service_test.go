package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	pending []*domain.Booking
	marked  []int64
	markErr error
}

func (f *fakeBookingRepo) GetPendingReminders(_ context.Context, _, _ time.Time) ([]*domain.Booking, error) {
	return f.pending, nil
}

func (f *fakeBookingRepo) MarkReminderSent(_ context.Context, id int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = append(f.marked, id)
	return nil
}

type fakeNotifier struct {
	sent    []int64
	failIDs map[int64]bool
}

func (f *fakeNotifier) SendReminder(_ context.Context, booking *domain.Booking) error {
	if f.failIDs[booking.ID] {
		return errors.New("delivery failed")
	}
	f.sent = append(f.sent, booking.ID)
	return nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id int64, date string, start types.TimeString) *domain.Booking {
	d, _ := time.Parse(domain.DateFormat, date)
	return &domain.Booking{
		ID:          id,
		BookingDate: d,
		StartTime:   start,
		Status:      domain.StatusConfirmed,
	}
}

func TestReminderRun(t *testing.T) {
	// 2025-06-10 10:00 UTC
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	t.Run("sends and marks bookings inside the window", func(t *testing.T) {
		repo := &fakeBookingRepo{pending: []*domain.Booking{
			testBooking(1, "2025-06-10", "15:00"),
			testBooking(2, "2025-06-11", "09:30"),
		}}
		notifier := &fakeNotifier{}

		svc := NewService(repo, notifier, time.UTC, 24, nopLogger{}).
			WithTimeProvider(&fixedTime{now: now})

		require.NoError(t, svc.Run(context.Background()))
		assert.Equal(t, []int64{1, 2}, notifier.sent)
		assert.Equal(t, []int64{1, 2}, repo.marked)
	})

	t.Run("skips bookings outside the window", func(t *testing.T) {
		repo := &fakeBookingRepo{pending: []*domain.Booking{
			// сегодня, но уже началось
			testBooking(1, "2025-06-10", "09:00"),
			// за пределами 24 часов
			testBooking(2, "2025-06-11", "11:00"),
		}}
		notifier := &fakeNotifier{}

		svc := NewService(repo, notifier, time.UTC, 24, nopLogger{}).
			WithTimeProvider(&fixedTime{now: now})

		require.NoError(t, svc.Run(context.Background()))
		assert.Empty(t, notifier.sent)
		assert.Empty(t, repo.marked)
	})

	t.Run("does not mark when delivery fails", func(t *testing.T) {
		repo := &fakeBookingRepo{pending: []*domain.Booking{
			testBooking(1, "2025-06-10", "15:00"),
			testBooking(2, "2025-06-10", "16:00"),
		}}
		notifier := &fakeNotifier{failIDs: map[int64]bool{1: true}}

		svc := NewService(repo, notifier, time.UTC, 24, nopLogger{}).
			WithTimeProvider(&fixedTime{now: now})

		require.NoError(t, svc.Run(context.Background()))
		assert.Equal(t, []int64{2}, notifier.sent)
		assert.Equal(t, []int64{2}, repo.marked)
	})
}
