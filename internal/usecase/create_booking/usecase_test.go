package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpedrosa/Mira-BookingService/internal/availability"
	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	clientRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/client"
	"github.com/jpedrosa/Mira-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	saved := *b
	saved.ID = 42
	saved.CreatedAt = time.Now()
	saved.UpdatedAt = saved.CreatedAt
	f.created = &saved
	return &saved, nil
}

func (f *fakeBookingRepo) GetByDay(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeClientRepo struct {
	byPhone  *domain.Client
	upserted *domain.Client
}

func (f *fakeClientRepo) GetByPhone(_ context.Context, _ string) (*domain.Client, error) {
	if f.byPhone == nil {
		return nil, clientRepo.ErrClientNotFound
	}
	return f.byPhone, nil
}

func (f *fakeClientRepo) UpsertByPhone(_ context.Context, c *domain.Client) (*domain.Client, error) {
	f.upserted = c
	return c, nil
}

type fakeCatalogRepo struct {
	service *domain.ServiceOffering
}

func (f *fakeCatalogRepo) GetServiceByID(_ context.Context, _ int64) (*domain.ServiceOffering, error) {
	return f.service, nil
}

type fakeSettingsRepo struct {
	policy domain.BusinessPolicy
}

func (f *fakeSettingsRepo) LoadPolicy(_ context.Context, _ string) (domain.BusinessPolicy, error) {
	return f.policy, nil
}

type fakeBlockRepo struct {
	blocks []domain.BlockedTime
}

func (f *fakeBlockRepo) GetByDate(_ context.Context, _ time.Time) ([]domain.BlockedTime, error) {
	return f.blocks, nil
}

type fakeExceptionRepo struct{}

func (fakeExceptionRepo) GetByDate(_ context.Context, _ time.Time) ([]domain.DateException, error) {
	return nil, nil
}

type fakeNotifier struct {
	created *domain.Booking
}

func (f *fakeNotifier) BookingCreated(b *domain.Booking) {
	f.created = b
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

type testEnv struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	clients  *fakeClientRepo
	notifier *fakeNotifier
}

func newTestEnv(service *domain.ServiceOffering, existing []*domain.Booking, byPhone *domain.Client) *testEnv {
	env := &testEnv{
		bookings: &fakeBookingRepo{existing: existing},
		clients:  &fakeClientRepo{byPhone: byPhone},
		notifier: &fakeNotifier{},
	}
	env.uc = NewUseCase(
		env.bookings,
		env.clients,
		&fakeCatalogRepo{service: service},
		&fakeSettingsRepo{policy: testPolicy()},
		&fakeBlockRepo{},
		fakeExceptionRepo{},
		env.notifier,
		fakeTxManager{},
		availability.NewHolidayCalendar(),
		time.UTC,
		nopLogger{},
	)
	// 2025-06-01 is a Sunday
	env.uc.timeProvider = &fixedTime{now: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)}
	return env
}

func adminActor() domain.Actor {
	return domain.Actor{AdminID: ptr.Ptr(int64(1))}
}

func clientActor(userID string) domain.Actor {
	return domain.Actor{UserID: &userID}
}

func validRequest(actor domain.Actor) *Request {
	// 2025-06-11 is a plain Wednesday (2025-06-10 is Dia de Portugal)
	return &Request{
		Actor:       actor,
		ServiceID:   1,
		Date:        time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		ClientName:  "Maria Silva",
		ClientPhone: "+351912345678",
	}
}

func TestExecute(t *testing.T) {
	t.Run("admin books free slot", func(t *testing.T) {
		env := newTestEnv(testService(), nil, nil)

		resp, err := env.uc.Execute(context.Background(), validRequest(adminActor()))
		require.NoError(t, err)

		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "confirmed", resp.Status)
		assert.Equal(t, "11:00", resp.EndTime.String())
		assert.Equal(t, "Limpeza de pele", resp.ServiceName)
		require.NotNil(t, env.notifier.created)
		assert.Equal(t, int64(42), env.notifier.created.ID)
	})

	t.Run("client books with own phone and client row is linked", func(t *testing.T) {
		env := newTestEnv(testService(), nil, nil)

		resp, err := env.uc.Execute(context.Background(), validRequest(clientActor("user-1")))
		require.NoError(t, err)

		assert.Equal(t, int64(42), resp.ID)
		require.NotNil(t, env.clients.upserted)
		require.NotNil(t, env.clients.upserted.UserID)
		assert.Equal(t, "user-1", *env.clients.upserted.UserID)
	})

	t.Run("anonymous actor rejected", func(t *testing.T) {
		env := newTestEnv(testService(), nil, nil)

		_, err := env.uc.Execute(context.Background(), validRequest(domain.Actor{}))
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("overlapping booking causes conflict", func(t *testing.T) {
		existing := []*domain.Booking{{
			ID:        7,
			StartTime: "09:30",
			EndTime:   "10:30",
			Status:    domain.StatusConfirmed,
		}}
		env := newTestEnv(testService(), existing, nil)

		_, err := env.uc.Execute(context.Background(), validRequest(adminActor()))
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("abutting booking does not conflict", func(t *testing.T) {
		existing := []*domain.Booking{{
			ID:        7,
			StartTime: "11:00",
			EndTime:   "12:00",
			Status:    domain.StatusConfirmed,
		}}
		env := newTestEnv(testService(), existing, nil)

		_, err := env.uc.Execute(context.Background(), validRequest(adminActor()))
		assert.NoError(t, err)
	})

	t.Run("booking in another lane does not conflict", func(t *testing.T) {
		existing := []*domain.Booking{{
			ID:                 7,
			StartTime:          "10:00",
			EndTime:            "11:00",
			Status:             domain.StatusConfirmed,
			ResponsibleAdminID: ptr.Ptr(int64(2)),
		}}
		env := newTestEnv(testService(), existing, nil)

		_, err := env.uc.Execute(context.Background(), validRequest(adminActor()))
		assert.NoError(t, err)
	})

	t.Run("recurring day off rejected", func(t *testing.T) {
		env := newTestEnv(testService(), nil, nil)

		req := validRequest(adminActor())
		req.Date = time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC) // Sunday
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateClosed)
	})

	t.Run("misaligned start time rejected", func(t *testing.T) {
		env := newTestEnv(testService(), nil, nil)

		req := validRequest(adminActor())
		req.StartTime = "10:15"
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSlotTime)
	})

	t.Run("slot past working hours rejected", func(t *testing.T) {
		env := newTestEnv(testService(), nil, nil)

		req := validRequest(adminActor())
		req.StartTime = "18:00"
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSlotTime)
	})

	t.Run("phone owned by another account rejected", func(t *testing.T) {
		owner := &domain.Client{Phone: "+351912345678", UserID: ptr.Ptr("user-2")}
		env := newTestEnv(testService(), nil, owner)

		_, err := env.uc.Execute(context.Background(), validRequest(clientActor("user-1")))
		assert.ErrorIs(t, err, ErrPhoneInUse)
	})

	t.Run("admin may book for any phone", func(t *testing.T) {
		owner := &domain.Client{Phone: "+351912345678", UserID: ptr.Ptr("user-2")}
		env := newTestEnv(testService(), nil, owner)

		_, err := env.uc.Execute(context.Background(), validRequest(adminActor()))
		assert.NoError(t, err)
	})

	t.Run("invalid phone rejected", func(t *testing.T) {
		env := newTestEnv(testService(), nil, nil)

		req := validRequest(adminActor())
		req.ClientPhone = "not-a-phone"
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("laser service outside last weekend rejected", func(t *testing.T) {
		laser := testService()
		laser.CategorySlug = "depilacao-laser"
		env := newTestEnv(laser, nil, nil)

		req := validRequest(adminActor())
		req.StartTime = "09:00"
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateClosed)
	})

	t.Run("laser service on last weekend accepted", func(t *testing.T) {
		laser := testService()
		laser.CategorySlug = "depilacao-laser"
		env := newTestEnv(laser, nil, nil)

		req := validRequest(adminActor())
		// 2025-06-28 is the last Saturday of June
		req.Date = time.Date(2025, time.June, 28, 0, 0, 0, 0, time.UTC)
		req.StartTime = "09:00"
		_, err := env.uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}
