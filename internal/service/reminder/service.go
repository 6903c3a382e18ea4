package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Таймаут одного прохода воркера
const runTimeout = 2 * time.Minute

// Service периодический воркер напоминаний: находит подтверждённые
// бронирования, начинающиеся в ближайшие hoursAhead часов, отправляет
// напоминание и помечает его отправленным. Пометка ставится только после
// успешной доставки хотя бы по одному каналу, поэтому повторный запуск
// безопасен.
type Service struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	timeProvider TimeProvider
	location     *time.Location
	hoursAhead   int
	cron         *cron.Cron
	logger       Logger
}

// NewService создает новый экземпляр воркера напоминаний
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	location *time.Location,
	hoursAhead int,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		location:     location,
		hoursAhead:   hoursAhead,
		logger:       logger,
	}
}

// Start запускает воркер по cron-расписанию
func (s *Service) Start(cronSpec string) error {
	s.cron = cron.New(cron.WithLocation(s.location))

	if _, err := s.cron.AddFunc(cronSpec, s.runOnce); err != nil {
		return fmt.Errorf("reminder: invalid cron spec %q: %w", cronSpec, err)
	}

	s.cron.Start()
	s.logger.Info("Reminder worker started with schedule %q", cronSpec)
	return nil
}

// Stop останавливает воркер и дожидается завершения текущего прохода
func (s *Service) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("Reminder worker stopped")
}

func (s *Service) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if err := s.Run(ctx); err != nil {
		s.logger.Error("Reminder run failed: %v", err)
	}
}

// Run выполняет один проход воркера
func (s *Service) Run(ctx context.Context) error {
	now := s.timeProvider.Now().In(s.location)
	until := now.Add(time.Duration(s.hoursAhead) * time.Hour)

	candidates, err := s.bookingRepo.GetPendingReminders(ctx, dateOnly(now), dateOnly(until))
	if err != nil {
		return fmt.Errorf("reminder: failed to load pending bookings: %w", err)
	}

	sent := 0
	for _, booking := range candidates {
		startsAt := booking.StartsAt(s.location)

		// Дата в выборке грубая, точный фильтр по моменту начала здесь
		if startsAt.Before(now) || startsAt.After(until) {
			continue
		}

		if err := s.notifier.SendReminder(ctx, booking); err != nil {
			s.logger.Warn("Reminder delivery failed for booking=%d: %v", booking.ID, err)
			continue
		}

		if err := s.bookingRepo.MarkReminderSent(ctx, booking.ID); err != nil {
			s.logger.Error("Failed to mark reminder sent for booking=%d: %v", booking.ID, err)
			continue
		}
		sent++
	}

	if sent > 0 || len(candidates) > 0 {
		s.logger.Info("Reminder run: %d candidates, %d reminders sent", len(candidates), sent)
	}
	return nil
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
