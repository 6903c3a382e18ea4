package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	catalogRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/catalog"
	"github.com/jpedrosa/Mira-BookingService/internal/service/schedule/models"
	"github.com/jpedrosa/Mira-BookingService/pkg/ptr"
)

type fakeBlockRepo struct {
	created *domain.BlockedTime
	nextID  int64
}

func (f *fakeBlockRepo) Create(_ context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error) {
	created := *block
	created.ID = f.nextID
	f.created = &created
	return &created, nil
}

func (f *fakeBlockRepo) GetByDateRange(_ context.Context, _, _ time.Time) ([]domain.BlockedTime, error) {
	return nil, nil
}

func (f *fakeBlockRepo) Delete(_ context.Context, _ int64) error { return nil }

type fakeExceptionRepo struct {
	created *domain.DateException
}

func (f *fakeExceptionRepo) Create(_ context.Context, exc *domain.DateException) (*domain.DateException, error) {
	created := *exc
	created.ID = 7
	f.created = &created
	return &created, nil
}

func (f *fakeExceptionRepo) GetByDateRange(_ context.Context, _, _ time.Time) ([]domain.DateException, error) {
	return nil, nil
}

func (f *fakeExceptionRepo) Delete(_ context.Context, _ int64) error { return nil }

type fakeCatalogRepo struct {
	categories map[string]*domain.ServiceCategory
}

func (f *fakeCatalogRepo) GetCategoryBySlug(_ context.Context, slug string) (*domain.ServiceCategory, error) {
	cat, ok := f.categories[slug]
	if !ok {
		return nil, catalogRepo.ErrCategoryNotFound
	}
	return cat, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(blocks *fakeBlockRepo, excs *fakeExceptionRepo) *Service {
	catalog := &fakeCatalogRepo{categories: map[string]*domain.ServiceCategory{
		"laser": {ID: 1, Slug: "laser", Name: "Depilação a Laser"},
	}}
	return NewService(blocks, excs, catalog, nopLogger{})
}

func adminActor() domain.Actor {
	return domain.Actor{AdminID: ptr.Ptr(int64(1))}
}

func TestCreateBlock(t *testing.T) {
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	t.Run("full day block", func(t *testing.T) {
		blocks := &fakeBlockRepo{nextID: 3}
		svc := newTestService(blocks, &fakeExceptionRepo{})

		resp, err := svc.CreateBlock(context.Background(), &models.CreateBlockRequest{
			Date:      date,
			IsFullDay: true,
			Reason:    ptr.Ptr("formação"),
			Actor:     adminActor(),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.ID)
		assert.True(t, resp.IsFullDay)
		assert.Nil(t, resp.StartTime)
		require.NotNil(t, blocks.created.CreatedBy)
		assert.Equal(t, int64(1), *blocks.created.CreatedBy)
	})

	t.Run("partial block requires valid interval", func(t *testing.T) {
		svc := newTestService(&fakeBlockRepo{nextID: 1}, &fakeExceptionRepo{})

		_, err := svc.CreateBlock(context.Background(), &models.CreateBlockRequest{
			Date:      date,
			IsFullDay: false,
			StartTime: "16:00",
			EndTime:   "14:00",
			Actor:     adminActor(),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		svc := newTestService(&fakeBlockRepo{nextID: 1}, &fakeExceptionRepo{})

		_, err := svc.CreateBlock(context.Background(), &models.CreateBlockRequest{
			Date:            date,
			IsFullDay:       true,
			ServiceCategory: ptr.Ptr("massagem"),
			Actor:           adminActor(),
		})

		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("non-admin rejected", func(t *testing.T) {
		svc := newTestService(&fakeBlockRepo{nextID: 1}, &fakeExceptionRepo{})

		_, err := svc.CreateBlock(context.Background(), &models.CreateBlockRequest{
			Date:      date,
			IsFullDay: true,
			Actor:     domain.Actor{UserID: ptr.Ptr("user-1")},
		})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestCreateException(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) // воскресенье

	t.Run("admin opens a closed date", func(t *testing.T) {
		excs := &fakeExceptionRepo{}
		svc := newTestService(&fakeBlockRepo{}, excs)

		resp, err := svc.CreateException(context.Background(), &models.CreateExceptionRequest{
			Date:            date,
			ServiceCategory: ptr.Ptr("laser"),
			Actor:           adminActor(),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "2025-06-15", resp.Date)
		require.NotNil(t, excs.created.ServiceCategory)
		assert.Equal(t, "laser", *excs.created.ServiceCategory)
	})

	t.Run("non-admin rejected", func(t *testing.T) {
		svc := newTestService(&fakeBlockRepo{}, &fakeExceptionRepo{})

		_, err := svc.CreateException(context.Background(), &models.CreateExceptionRequest{
			Date:  date,
			Actor: domain.Actor{},
		})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
