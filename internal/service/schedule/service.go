package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	blockRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/block"
	catalogRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/catalog"
	exceptionRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/exception"
	"github.com/jpedrosa/Mira-BookingService/internal/service/schedule/models"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// Service сервис управления календарём: блокировки и исключения.
// Все операции доступны только администраторам.
type Service struct {
	blockRepo     BlockRepository
	exceptionRepo ExceptionRepository
	catalogRepo   CatalogRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	blockRepo BlockRepository,
	exceptionRepo ExceptionRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *Service {
	return &Service{
		blockRepo:     blockRepo,
		exceptionRepo: exceptionRepo,
		catalogRepo:   catalogRepo,
		logger:        logger,
	}
}

// CreateBlock создает блокировку времени.
// Частичная блокировка требует валидного интервала [start, end).
func (s *Service) CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("CreateBlock: date=%s fullDay=%v", req.Date.Format(domain.DateFormat), req.IsFullDay)

	if !req.Actor.IsAdmin() {
		s.logger.Warn("CreateBlock: access denied, admin required")
		return nil, ErrAccessDenied
	}

	block := &domain.BlockedTime{
		BlockDate:       req.Date,
		IsFullDay:       req.IsFullDay,
		ServiceCategory: req.ServiceCategory,
		Reason:          req.Reason,
		CreatedBy:       req.Actor.AdminID,
	}

	if !req.IsFullDay {
		start, err := types.NewTimeStringFromString(req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
		}
		end, err := types.NewTimeStringFromString(req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
		}
		if !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
		}
		block.StartTime = start
		block.EndTime = end
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	if err := s.checkCategory(ctx, req.ServiceCategory); err != nil {
		return nil, err
	}

	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("CreateBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlock: created block id=%d", created.ID)
	return models.FromDomainBlock(created), nil
}

// DeleteBlock удаляет блокировку
func (s *Service) DeleteBlock(ctx context.Context, id int64, actor domain.Actor) error {
	s.logger.Info("DeleteBlock: deleting block id=%d", id)

	if !actor.IsAdmin() {
		s.logger.Warn("DeleteBlock: access denied, admin required")
		return ErrAccessDenied
	}

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlock: block id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlock: successfully deleted block id=%d", id)
	return nil
}

// CreateException создает исключение, открывающее дату, закрытую регулярным
// правилом. Праздники исключением не открываются: движок правил проверяет
// праздник раньше.
func (s *Service) CreateException(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
	s.logger.Info("CreateException: date=%s", req.Date.Format(domain.DateFormat))

	if !req.Actor.IsAdmin() {
		s.logger.Warn("CreateException: access denied, admin required")
		return nil, ErrAccessDenied
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	if err := s.checkCategory(ctx, req.ServiceCategory); err != nil {
		return nil, err
	}

	created, err := s.exceptionRepo.Create(ctx, &domain.DateException{
		ExceptionDate:   req.Date,
		ServiceCategory: req.ServiceCategory,
		Reason:          req.Reason,
		CreatedBy:       req.Actor.AdminID,
	})
	if err != nil {
		s.logger.Error("CreateException: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateException: created exception id=%d", created.ID)
	return models.FromDomainException(created), nil
}

// DeleteException удаляет исключение
func (s *Service) DeleteException(ctx context.Context, id int64, actor domain.Actor) error {
	s.logger.Info("DeleteException: deleting exception id=%d", id)

	if !actor.IsAdmin() {
		s.logger.Warn("DeleteException: access denied, admin required")
		return ErrAccessDenied
	}

	if err := s.exceptionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, exceptionRepo.ErrExceptionNotFound) {
			s.logger.Warn("DeleteException: exception id=%d not found", id)
			return ErrExceptionNotFound
		}
		s.logger.Error("DeleteException: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteException: successfully deleted exception id=%d", id)
	return nil
}

// ListSchedule получает блокировки и исключения за период
func (s *Service) ListSchedule(ctx context.Context, req *models.ListScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("ListSchedule: from=%s to=%s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if !req.Actor.IsAdmin() {
		s.logger.Warn("ListSchedule: access denied, admin required")
		return nil, ErrAccessDenied
	}

	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: period end before start", ErrInvalidInput)
	}

	blocks, err := s.blockRepo.GetByDateRange(ctx, req.From, req.To)
	if err != nil {
		s.logger.Error("ListSchedule: block repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSchedule - block repository error: %v", ErrInternal, err)
	}

	exceptions, err := s.exceptionRepo.GetByDateRange(ctx, req.From, req.To)
	if err != nil {
		s.logger.Error("ListSchedule: exception repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSchedule - exception repository error: %v", ErrInternal, err)
	}

	resp := &models.ScheduleResponse{
		Blocks:     make([]models.BlockResponse, 0, len(blocks)),
		Exceptions: make([]models.ExceptionResponse, 0, len(exceptions)),
	}
	for i := range blocks {
		resp.Blocks = append(resp.Blocks, *models.FromDomainBlock(&blocks[i]))
	}
	for i := range exceptions {
		resp.Exceptions = append(resp.Exceptions, *models.FromDomainException(&exceptions[i]))
	}

	s.logger.Info("ListSchedule: fetched %d blocks, %d exceptions", len(blocks), len(exceptions))
	return resp, nil
}

// checkCategory проверяет существование slug категории, если он задан
func (s *Service) checkCategory(ctx context.Context, slug *string) error {
	if slug == nil {
		return nil
	}

	if _, err := s.catalogRepo.GetCategoryBySlug(ctx, *slug); err != nil {
		if errors.Is(err, catalogRepo.ErrCategoryNotFound) {
			s.logger.Warn("checkCategory: unknown category slug=%s", *slug)
			return ErrCategoryNotFound
		}
		s.logger.Error("checkCategory: catalog repository error for slug=%s: %v", *slug, err)
		return fmt.Errorf("%w: checkCategory - repository error: %v", ErrInternal, err)
	}

	return nil
}
