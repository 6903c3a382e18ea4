package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/availability"
	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	bookingRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/catalog"
	clientRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/client"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	clientRepo    ClientRepository
	catalogRepo   CatalogRepository
	settingsRepo  SettingsRepository
	blockRepo     BlockRepository
	exceptionRepo ExceptionRepository
	notifier      Notifier
	txManager     TransactionManager
	holidays      *availability.HolidayCalendar
	location      *time.Location
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	clientRepository ClientRepository,
	catalogRepository CatalogRepository,
	settingsRepository SettingsRepository,
	blockRepository BlockRepository,
	exceptionRepository ExceptionRepository,
	notifier Notifier,
	txManager TransactionManager,
	holidays *availability.HolidayCalendar,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepository,
		clientRepo:    clientRepository,
		catalogRepo:   catalogRepository,
		settingsRepo:  settingsRepository,
		blockRepo:     blockRepository,
		exceptionRepo: exceptionRepository,
		notifier:      notifier,
		txManager:     txManager,
		holidays:      holidays,
		location:      location,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Авторитетная проверка конфликтов выполняется в сериализуемой транзакции
// с блокировкой дорожки специалиста, чтобы исключить гонку двух клиентов
// за один слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, date=%s, time=%s, phone=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.ClientPhone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Бронировать могут администраторы и авторизованные клиенты
	if !req.Actor.IsAdmin() && req.Actor.UserID == nil {
		uc.logger.Warn("CreateBooking: anonymous actor rejected")
		return nil, ErrAccessDenied
	}

	// 3. Текущее время в таймзоне бизнеса
	now := uc.timeProvider.Now().In(uc.location)

	// 4. Получаем услугу из каталога
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Загружаем политику бизнеса
		policy, err := uc.settingsRepo.LoadPolicy(txCtx, uc.location.String())
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load business policy: %v", err)
			return fmt.Errorf("%w: failed to load business policy: %v", ErrInternal, err)
		}

		// 5.2. Блокировки и исключения на дату
		blocks, err := uc.blockRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocked times: %v", err)
			return fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
		}

		exceptions, err := uc.exceptionRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get date exceptions: %v", err)
			return fmt.Errorf("%w: failed to get date exceptions: %v", ErrInternal, err)
		}

		// 5.3. Правила календаря
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
			uc.logger.Warn("CreateBooking: date %s is closed: %s",
				req.Date.Format(domain.DateFormat), reason)
			return fmt.Errorf("%w: %s", ErrDateClosed, reason)
		}

		// 5.4. Время начала на сетке слотов внутри рабочего окна
		window := policy.HoursFor(service.CategorySlug)
		if err := validateSlotTime(req.StartTime, service.DurationMinutes, window); err != nil {
			uc.logger.Warn("CreateBooking: slot time validation failed: %v", err)
			return err
		}

		// 5.5. На сегодня нельзя бронировать уже прошедшее время
		if err := validateNotInPast(req.Date, req.StartTime, now); err != nil {
			uc.logger.Warn("CreateBooking: slot is in the past: %v", err)
			return err
		}

		// 5.6. Телефон не должен принадлежать чужому аккаунту
		if err := uc.checkPhoneOwnership(txCtx, req); err != nil {
			return err
		}

		// 5.7. Бронирования дорожки на дату с блокировкой (FOR UPDATE)
		filter := domain.DayBookingsFilter{
			Date:               req.Date,
			ResponsibleAdminID: service.ResponsibleAdminID,
		}

		bookings, err := uc.bookingRepo.GetByDay(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.8. Проверка конфликтов интервалов
		endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}

		busy := availability.BusyIntervals(bookings, blocks, service.CategorySlug, service.ResponsibleAdminID, nil)
		candidate := availability.Interval{Start: req.StartTime, End: endTime}
		if !availability.IsIntervalFree(candidate, busy) {
			uc.logger.Warn("CreateBooking: slot %s-%s conflicts with existing interval", req.StartTime, endTime)
			return ErrSlotConflict
		}

		// 5.9. Фиксируем клиента (upsert по телефону)
		client := &domain.Client{
			Name:  req.ClientName,
			Phone: req.ClientPhone,
			Email: req.ClientEmail,
		}
		if !req.Actor.IsAdmin() {
			client.UserID = req.Actor.UserID
		}

		if _, err := uc.clientRepo.UpsertByPhone(txCtx, client); err != nil {
			uc.logger.Error("CreateBooking: failed to upsert client: %v", err)
			return fmt.Errorf("%w: failed to upsert client: %v", ErrInternal, err)
		}

		// 5.10. Создаем бронирование со снапшотом услуги
		booking := &domain.Booking{
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			EndTime:     endTime,
			Status:      domain.StatusConfirmed,
			// Снапшот услуги: правки каталога не переписывают историю
			ServiceName:            service.Name,
			ServiceDurationMinutes: service.DurationMinutes,
			ServicePrice:           service.Price,
			ServiceCategory:        service.CategorySlug,
			ClientName:             req.ClientName,
			ClientPhone:            req.ClientPhone,
			ClientEmail:            req.ClientEmail,
			ResponsibleAdminID:     service.ResponsibleAdminID,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Частичный уникальный индекс ловит гонку, которую не поймал
			// интервальный чек
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: unique index rejected slot %s %s", req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 6. Уведомления после коммита, fire-and-forget
	uc.notifier.BookingCreated(result)

	return toResponse(result), nil
}

// checkPhoneOwnership запрещает авторизованному клиенту бронировать на
// телефон, привязанный к чужому аккаунту. Администратору доступен любой
// телефон (ручные бронирования для офлайн-клиентов).
func (uc *UseCase) checkPhoneOwnership(ctx context.Context, req *Request) error {
	if req.Actor.IsAdmin() {
		return nil
	}

	existing, err := uc.clientRepo.GetByPhone(ctx, req.ClientPhone)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil
		}
		uc.logger.Error("CreateBooking: failed to check phone ownership: %v", err)
		return fmt.Errorf("%w: failed to check phone ownership: %v", ErrInternal, err)
	}

	if existing.UserID != nil && *existing.UserID != *req.Actor.UserID {
		uc.logger.Warn("CreateBooking: phone %s belongs to another account", req.ClientPhone)
		return ErrPhoneInUse
	}

	return nil
}
