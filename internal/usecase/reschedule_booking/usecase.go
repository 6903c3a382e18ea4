package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/availability"
	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	bookingRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/client"
)

// UseCase use case для переноса бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	clientRepo    ClientRepository
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

// Execute выполняет use case переноса бронирования.
// Для клиента действует окно изменений: не позднее чем за 24 часа до
// исходного начала визита, и новое время тоже не ближе 24 часов.
// Администратор переносит без ограничений окна.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, newDate=%s, newTime=%s",
		req.BookingID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в таймзоне бизнеса
	now := uc.timeProvider.Now().In(uc.location)

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Загружаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.IsCancelled() {
			uc.logger.Warn("RescheduleBooking: booking id=%d is cancelled", req.BookingID)
			return ErrBookingCancelled
		}

		// 3.2. Проверка владения бронированием
		if err := uc.checkOwnership(txCtx, req.Actor, booking); err != nil {
			return err
		}

		// 3.3. Окно изменений: обе стороны переноса не ближе 24 часов
		if !req.Actor.IsAdmin() {
			if err := validateChangeWindow(booking.StartsAt(uc.location), now); err != nil {
				uc.logger.Warn("RescheduleBooking: change window closed for booking id=%d", req.BookingID)
				return err
			}

			newStartsAt := startsAt(req.NewDate, req.NewStartTime, uc.location)
			if err := validateChangeWindow(newStartsAt, now); err != nil {
				uc.logger.Warn("RescheduleBooking: new slot is within the change window for booking id=%d", req.BookingID)
				return err
			}
		}

		// 3.4. Загружаем политику бизнеса
		policy, err := uc.settingsRepo.LoadPolicy(txCtx, uc.location.String())
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to load business policy: %v", err)
			return fmt.Errorf("%w: failed to load business policy: %v", ErrInternal, err)
		}

		// 3.5. Блокировки и исключения на новую дату
		blocks, err := uc.blockRepo.GetByDate(txCtx, req.NewDate)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get blocked times: %v", err)
			return fmt.Errorf("%w: failed to get blocked times: %v", ErrInternal, err)
		}

		exceptions, err := uc.exceptionRepo.GetByDate(txCtx, req.NewDate)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get date exceptions: %v", err)
			return fmt.Errorf("%w: failed to get date exceptions: %v", ErrInternal, err)
		}

		// 3.6. Правила календаря на новую дату
		bookable, reason := availability.IsDateBookable(availability.DayInputs{
			Date:         req.NewDate,
			Now:          now,
			CategorySlug: booking.ServiceCategory,
			Policy:       policy,
			Holidays:     uc.holidays,
			Blocks:       blocks,
			Exceptions:   exceptions,
		})
		if !bookable {
			uc.logger.Warn("RescheduleBooking: date %s is closed: %s",
				req.NewDate.Format(domain.DateFormat), reason)
			return fmt.Errorf("%w: %s", ErrDateClosed, reason)
		}

		// 3.7. Новое время на сетке слотов внутри рабочего окна
		window := policy.HoursFor(booking.ServiceCategory)
		if err := validateSlotTime(req.NewStartTime, booking.ServiceDurationMinutes, window); err != nil {
			uc.logger.Warn("RescheduleBooking: slot time validation failed: %v", err)
			return err
		}

		if err := validateNotInPast(req.NewDate, req.NewStartTime, now); err != nil {
			uc.logger.Warn("RescheduleBooking: slot is in the past: %v", err)
			return err
		}

		// 3.8. Бронирования дорожки на новую дату с блокировкой (FOR UPDATE)
		filter := domain.DayBookingsFilter{
			Date:               req.NewDate,
			ResponsibleAdminID: booking.ResponsibleAdminID,
		}

		bookings, err := uc.bookingRepo.GetByDay(txCtx, filter)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.9. Проверка конфликтов, исключая собственный интервал
		newEnd, err := req.NewStartTime.AddMinutes(booking.ServiceDurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}

		busy := availability.BusyIntervals(bookings, blocks, booking.ServiceCategory,
			booking.ResponsibleAdminID, &booking.ID)
		candidate := availability.Interval{Start: req.NewStartTime, End: newEnd}
		if !availability.IsIntervalFree(candidate, busy) {
			uc.logger.Warn("RescheduleBooking: slot %s-%s conflicts with existing interval", req.NewStartTime, newEnd)
			return ErrSlotConflict
		}

		// 3.10. Переносим бронирование; сброс флага напоминания внутри репозитория
		if err := uc.bookingRepo.Reschedule(txCtx, booking.ID, req.NewDate, req.NewStartTime, newEnd); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("RescheduleBooking: unique index rejected slot %s %s",
					req.NewDate.Format(domain.DateFormat), req.NewStartTime)
				return ErrSlotConflict
			}
			uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
		}

		updated := *booking
		updated.BookingDate = req.NewDate
		updated.StartTime = req.NewStartTime
		updated.EndTime = newEnd
		updated.ReminderSent = false
		result = &updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%d", result.ID)

	// 4. Уведомления после коммита, fire-and-forget
	uc.notifier.BookingRescheduled(result)

	return toResponse(result), nil
}

// checkOwnership проверяет право актора изменять бронирование: администратор
// изменяет любое, клиент только бронирование на свой телефон
func (uc *UseCase) checkOwnership(ctx context.Context, actor domain.Actor, booking *domain.Booking) error {
	if actor.IsAdmin() {
		return nil
	}

	if actor.UserID == nil {
		return ErrAccessDenied
	}

	client, err := uc.clientRepo.GetByUserID(ctx, *actor.UserID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return ErrAccessDenied
		}
		uc.logger.Error("RescheduleBooking: failed to resolve client for user=%s: %v", *actor.UserID, err)
		return fmt.Errorf("%w: failed to resolve client: %v", ErrInternal, err)
	}

	if client.Phone != booking.ClientPhone {
		uc.logger.Warn("RescheduleBooking: booking id=%d belongs to another client", booking.ID)
		return ErrAccessDenied
	}

	return nil
}
