package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	bookingRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/client"
)

// UseCase use case для отмены бронирования.
// Отмена это терминальный переход одной строки, сериализуемая транзакция
// здесь не нужна: повторная отмена отсекается условием в UPDATE.
type UseCase struct {
	bookingRepo  BookingRepository
	clientRepo   ClientRepository
	notifier     Notifier
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	clientRepository ClientRepository,
	notifier Notifier,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepository,
		clientRepo:   clientRepository,
		notifier:     notifier,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d", req.BookingID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	// 2. Загружаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.IsCancelled() {
		uc.logger.Warn("CancelBooking: booking id=%d is already cancelled", req.BookingID)
		return nil, ErrAlreadyCancelled
	}

	// 3. Проверка владения бронированием
	if err := uc.checkOwnership(ctx, req.Actor, booking); err != nil {
		return nil, err
	}

	// 4. Окно изменений: клиент отменяет не позднее чем за 24 часа
	if !req.Actor.IsAdmin() {
		now := uc.timeProvider.Now().In(uc.location)
		if booking.StartsAt(uc.location).Sub(now) < domain.ChangeWindowHours*time.Hour {
			uc.logger.Warn("CancelBooking: change window closed for booking id=%d", req.BookingID)
			return nil, ErrChangeWindowClosed
		}
	}

	// 5. Отменяем бронирование
	if err := uc.bookingRepo.Cancel(ctx, booking.ID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Гонка с параллельной отменой
			return nil, ErrAlreadyCancelled
		}
		uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	cancelled := *booking
	cancelled.Status = domain.StatusCancelled

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%d", cancelled.ID)

	// 6. Уведомления после фиксации, fire-and-forget
	uc.notifier.BookingCancelled(&cancelled)

	return toResponse(&cancelled), nil
}

// checkOwnership проверяет право актора отменять бронирование: администратор
// отменяет любое, клиент только бронирование на свой телефон
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
		uc.logger.Error("CancelBooking: failed to resolve client for user=%s: %v", *actor.UserID, err)
		return fmt.Errorf("%w: failed to resolve client: %v", ErrInternal, err)
	}

	if client.Phone != booking.ClientPhone {
		uc.logger.Warn("CancelBooking: booking id=%d belongs to another client", booking.ID)
		return ErrAccessDenied
	}

	return nil
}
