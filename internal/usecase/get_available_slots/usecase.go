package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/availability"
	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	catalogRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/catalog"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	catalogRepo   CatalogRepository
	settingsRepo  SettingsRepository
	bookingRepo   BookingRepository
	blockRepo     BlockRepository
	exceptionRepo ExceptionRepository
	holidays      *availability.HolidayCalendar
	location      *time.Location
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	settingsRepo SettingsRepository,
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	exceptionRepo ExceptionRepository,
	holidays *availability.HolidayCalendar,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:   catalogRepo,
		settingsRepo:  settingsRepo,
		bookingRepo:   bookingRepo,
		blockRepo:     blockRepo,
		exceptionRepo: exceptionRepo,
		holidays:      holidays,
		location:      location,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в таймзоне бизнеса
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Получаем услугу из каталога
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Неактивная услуга недоступна для записи
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Загружаем политику бизнеса (дни недели, рабочие часы)
	policy, err := uc.settingsRepo.LoadPolicy(ctx, uc.location.String())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load business policy: %v", err)
		return nil, fmt.Errorf("%w: failed to load business policy: %v", ErrInternal, err)
	}

	// 5. Блокировки и исключения на дату
	blocks, err := uc.blockRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
	}

	exceptions, err := uc.exceptionRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get date exceptions: %v", err)
		return nil, fmt.Errorf("%w: failed to get date exceptions: %v", ErrInternal, err)
	}

	// 6. Правила календаря: закрытая дата это пустой список слотов с причиной
	bookable, reason := availability.IsDateBookable(availability.DayInputs{
		Date:         req.Date,
		Now:          now,
		CategorySlug: service.CategorySlug,
		Policy:       policy,
		Holidays:     uc.holidays,
		Blocks:       blocks,
		Exceptions:   exceptions,
	})
	if !bookable {
		uc.logger.Info("GetAvailableSlots: date %s is closed for service=%d: %s",
			req.Date.Format(domain.DateFormat), req.ServiceID, reason)
		return &Response{
			Date:            req.Date,
			ServiceID:       req.ServiceID,
			DurationMinutes: service.DurationMinutes,
			Slots:           []types.TimeString{},
			Closed:          true,
			Reason:          string(reason),
		}, nil
	}

	// 7. Занятость дорожки специалиста на дату
	filter := domain.DayBookingsFilter{
		Date:               req.Date,
		ResponsibleAdminID: service.ResponsibleAdminID,
	}

	bookings, err := uc.bookingRepo.GetByDay(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	busy := availability.BusyIntervals(bookings, blocks, service.CategorySlug, service.ResponsibleAdminID, nil)

	// 8. Свободные слоты в окне категории
	window := policy.HoursFor(service.CategorySlug)
	slots := availability.FreeSlots(service.DurationMinutes, window, busy)

	// 9. На сегодняшнюю дату убираем уже прошедшие времена начала
	slots = dropPastSlots(slots, req.Date, now)

	uc.logger.Info("GetAvailableSlots: %d slots for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
		Closed:          false,
	}, nil
}

// dropPastSlots фильтрует слоты, начинающиеся не позже текущего момента.
// Применяется только к сегодняшней дате.
func dropPastSlots(slots []types.TimeString, date, now time.Time) []types.TimeString {
	if !isSameDay(date, now) {
		return slots
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	filtered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.Minutes() > nowMinutes {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}
