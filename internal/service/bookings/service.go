package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	bookingRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/client"
	"github.com/jpedrosa/Mira-BookingService/internal/service/bookings/models"
)

// Service сервис чтения и администрирования бронирований
type Service struct {
	bookingRepo BookingRepository
	clientRepo  ClientRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		clientRepo:  clientRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Администратору доступно любое бронирование, клиенту — только своё
// (сопоставление по телефону привязанного клиента).
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBookingAccess(ctx, booking, actor); err != nil {
		s.logger.Warn("GetByID: access denied to booking id=%d", id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю бронирований клиента по телефону.
// Клиент может смотреть только собственную историю, администратор — любую.
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for phone=%s, includeCancelled=%v",
		req.Phone, req.IncludeCancelled)

	if req.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if !req.Actor.IsAdmin() {
		if err := s.checkPhoneOwnership(ctx, req.Phone, req.Actor); err != nil {
			return nil, err
		}
	}

	bookings, err := s.bookingRepo.GetByClientPhone(ctx, req.Phone, req.IncludeCancelled)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for phone=%s: %v", req.Phone, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for phone=%s", len(bookings), req.Phone)
	return models.FromDomainBookingList(bookings), nil
}

// GetDayAgenda получает все бронирования на дату по всем специалистам.
// Только для администраторов.
func (s *Service) GetDayAgenda(ctx context.Context, req *models.GetDayAgendaRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetDayAgenda: fetching agenda for date=%s", req.Date.Format(domain.DateFormat))

	if !req.Actor.IsAdmin() {
		s.logger.Warn("GetDayAgenda: access denied, admin required")
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.GetByDay(ctx, domain.DayBookingsFilter{
		Date:     req.Date,
		AnyAdmin: true,
	})
	if err != nil {
		s.logger.Error("GetDayAgenda: repository error for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDayAgenda - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDayAgenda: successfully fetched %d bookings for date=%s",
		len(bookings), req.Date.Format(domain.DateFormat))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateClientInfo исправляет имя и email клиента в записи клиента и во всех
// его бронированиях. Только для администраторов.
func (s *Service) UpdateClientInfo(ctx context.Context, req *models.UpdateClientInfoRequest) (*models.UpdateClientInfoResponse, error) {
	s.logger.Info("UpdateClientInfo: updating client info for phone=%s", req.Phone)

	if !req.Actor.IsAdmin() {
		s.logger.Warn("UpdateClientInfo: access denied, admin required")
		return nil, ErrAccessDenied
	}

	if req.Phone == "" || req.Name == "" {
		return nil, fmt.Errorf("%w: phone and name are required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxClientNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if err := s.clientRepo.UpdateInfo(ctx, req.Phone, req.Name, req.Email); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("UpdateClientInfo: client phone=%s not found", req.Phone)
			return nil, ErrClientNotFound
		}
		s.logger.Error("UpdateClientInfo: client repository error for phone=%s: %v", req.Phone, err)
		return nil, fmt.Errorf("%w: UpdateClientInfo - client repository error: %v", ErrInternal, err)
	}

	updated, err := s.bookingRepo.UpdateClientInfo(ctx, req.Phone, req.Name, req.Email)
	if err != nil {
		s.logger.Error("UpdateClientInfo: booking repository error for phone=%s: %v", req.Phone, err)
		return nil, fmt.Errorf("%w: UpdateClientInfo - booking repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateClientInfo: successfully updated %d bookings for phone=%s", updated, req.Phone)
	return &models.UpdateClientInfoResponse{UpdatedBookings: updated}, nil
}

// Вспомогательные методы

// checkBookingAccess проверяет доступ вызывающего к бронированию
func (s *Service) checkBookingAccess(ctx context.Context, booking *domain.Booking, actor domain.Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	return s.checkPhoneOwnership(ctx, booking.ClientPhone, actor)
}

// checkPhoneOwnership проверяет, что телефон принадлежит клиенту вызывающего
func (s *Service) checkPhoneOwnership(ctx context.Context, phone string, actor domain.Actor) error {
	if actor.UserID == nil {
		return ErrAccessDenied
	}

	client, err := s.clientRepo.GetByUserID(ctx, *actor.UserID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("checkPhoneOwnership: no client for user=%s", *actor.UserID)
			return ErrAccessDenied
		}
		s.logger.Error("checkPhoneOwnership: client repository error for user=%s: %v", *actor.UserID, err)
		return fmt.Errorf("%w: checkPhoneOwnership - repository error: %v", ErrInternal, err)
	}

	if client.Phone != phone {
		s.logger.Warn("checkPhoneOwnership: phone mismatch for user=%s", *actor.UserID)
		return ErrAccessDenied
	}

	return nil
}
