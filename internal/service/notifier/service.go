package notifier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	gcalRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/gcal"
	"github.com/jpedrosa/Mira-BookingService/internal/integrations/gcalendar"
	"github.com/jpedrosa/Mira-BookingService/internal/integrations/mailer"
	"github.com/jpedrosa/Mira-BookingService/internal/integrations/push"
)

// Таймаут на доставку одного пакета уведомлений
const dispatchTimeout = 30 * time.Second

// Service рассылает уведомления после фиксации бронирования.
// Все методы fire-and-forget: запускают доставку в отдельной горутине,
// ошибки логируются и никогда не влияют на результат операции.
type Service struct {
	mailer     MailerClient
	push       PushClient
	calendar   CalendarClient
	tokenRepo  TokenRepository
	deviceRepo DeviceRepository
	metrics    MetricsCollector
	adminEmail string
	location   *time.Location
	logger     Logger
}

// NewService создает новый экземпляр сервиса уведомлений.
// metrics может быть nil, если метрики выключены.
func NewService(
	mailerClient MailerClient,
	pushClient PushClient,
	calendarClient CalendarClient,
	tokenRepo TokenRepository,
	deviceRepo DeviceRepository,
	metrics MetricsCollector,
	adminEmail string,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		mailer:     mailerClient,
		push:       pushClient,
		calendar:   calendarClient,
		tokenRepo:  tokenRepo,
		deviceRepo: deviceRepo,
		metrics:    metrics,
		adminEmail: adminEmail,
		location:   location,
		logger:     logger,
	}
}

// BookingCreated уведомляет о новом бронировании
func (s *Service) BookingCreated(booking *domain.Booking) {
	b := *booking
	go s.dispatch(&b, "criada",
		"Marcação confirmada",
		fmt.Sprintf("A sua marcação de %s foi confirmada para %s às %s.",
			b.ServiceName, b.BookingDate.Format(domain.DateFormat), b.StartTime),
		s.syncCreate,
	)
}

// BookingRescheduled уведомляет о переносе бронирования
func (s *Service) BookingRescheduled(booking *domain.Booking) {
	b := *booking
	go s.dispatch(&b, "reagendada",
		"Marcação reagendada",
		fmt.Sprintf("A sua marcação de %s foi reagendada para %s às %s.",
			b.ServiceName, b.BookingDate.Format(domain.DateFormat), b.StartTime),
		s.syncUpdate,
	)
}

// BookingCancelled уведомляет об отмене бронирования
func (s *Service) BookingCancelled(booking *domain.Booking) {
	b := *booking
	go s.dispatch(&b, "cancelada",
		"Marcação cancelada",
		fmt.Sprintf("A sua marcação de %s em %s às %s foi cancelada.",
			b.ServiceName, b.BookingDate.Format(domain.DateFormat), b.StartTime),
		s.syncDelete,
	)
}

// SendReminder отправляет напоминание о завтрашнем визите.
// Синхронный вызов: reminder-воркер сам решает, когда помечать отправку.
func (s *Service) SendReminder(ctx context.Context, booking *domain.Booking) error {
	subject := "Lembrete de marcação"
	body := fmt.Sprintf("Lembramos a sua marcação de %s amanhã, %s às %s.",
		booking.ServiceName, booking.BookingDate.Format(domain.DateFormat), booking.StartTime)

	delivered := false

	if booking.ClientEmail != nil {
		if err := s.sendMail(ctx, *booking.ClientEmail, subject, body); err == nil {
			delivered = true
		}
	}
	if s.sendPush(ctx, booking.ClientPhone, subject, body) {
		delivered = true
	}

	if !delivered {
		return fmt.Errorf("reminder for booking %d: no channel delivered", booking.ID)
	}
	return nil
}

func (s *Service) dispatch(booking *domain.Booking, action, subject, body string, sync func(ctx context.Context, b *domain.Booking)) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	if booking.ClientEmail != nil {
		_ = s.sendMail(ctx, *booking.ClientEmail, subject, body)
	}

	if s.adminEmail != "" {
		adminBody := fmt.Sprintf("Marcação %s: %s, %s %s, cliente %s (%s).",
			action, booking.ServiceName, booking.BookingDate.Format(domain.DateFormat),
			booking.StartTime, booking.ClientName, booking.ClientPhone)
		_ = s.sendMail(ctx, s.adminEmail, "Atualização de marcação", adminBody)
	}

	s.sendPush(ctx, booking.ClientPhone, subject, body)

	sync(ctx, booking)
}

func (s *Service) sendMail(ctx context.Context, to, subject, body string) error {
	err := s.mailer.Send(ctx, to, subject, body)
	if err != nil {
		if errors.Is(err, mailer.ErrDisabled) {
			return err
		}
		s.logger.Error("notifier: failed to send mail to %s: %v", to, err)
		s.observe("email", "error")
		return err
	}

	s.observe("email", "ok")
	return nil
}

// sendPush рассылает уведомление на все устройства клиента.
// Возвращает true, если хотя бы одно устройство получило уведомление.
func (s *Service) sendPush(ctx context.Context, phone, title, body string) bool {
	tokens, err := s.deviceRepo.ListTokensByPhone(ctx, phone)
	if err != nil {
		s.logger.Error("notifier: failed to list devices for phone=%s: %v", phone, err)
		return false
	}

	delivered := false
	for _, token := range tokens {
		err := s.push.Notify(ctx, token, title, body)
		switch {
		case err == nil:
			delivered = true
			s.observe("push", "ok")
		case errors.Is(err, push.ErrDisabled):
			return false
		case errors.Is(err, push.ErrTokenExpired):
			s.logger.Info("notifier: removing expired device token for phone=%s", phone)
			if delErr := s.deviceRepo.DeleteToken(ctx, token); delErr != nil {
				s.logger.Error("notifier: failed to remove expired token: %v", delErr)
			}
			s.observe("push", "expired")
		default:
			s.logger.Error("notifier: failed to push to device of phone=%s: %v", phone, err)
			s.observe("push", "error")
		}
	}

	return delivered
}

// Синхронизация с Google Calendar

func (s *Service) syncCreate(ctx context.Context, booking *domain.Booking) {
	token, ok := s.calendarToken(ctx, booking)
	if !ok {
		return
	}

	event := s.buildEvent(booking)
	if _, err := s.calendar.CreateEvent(ctx, token.RefreshToken, token.CalendarID, event); err != nil {
		if errors.Is(err, gcalendar.ErrDisabled) {
			return
		}
		s.logger.Error("notifier: calendar create failed for booking=%d: %v", booking.ID, err)
		s.observe("calendar", "error")
		return
	}
	s.observe("calendar", "ok")
}

func (s *Service) syncUpdate(ctx context.Context, booking *domain.Booking) {
	token, ok := s.calendarToken(ctx, booking)
	if !ok {
		return
	}

	event := s.buildEvent(booking)
	if _, err := s.calendar.UpdateEvent(ctx, token.RefreshToken, token.CalendarID, event); err != nil {
		if errors.Is(err, gcalendar.ErrDisabled) {
			return
		}
		s.logger.Error("notifier: calendar update failed for booking=%d: %v", booking.ID, err)
		s.observe("calendar", "error")
		return
	}
	s.observe("calendar", "ok")
}

func (s *Service) syncDelete(ctx context.Context, booking *domain.Booking) {
	token, ok := s.calendarToken(ctx, booking)
	if !ok {
		return
	}

	err := s.calendar.DeleteEvent(ctx, token.RefreshToken, token.CalendarID, booking.ID)
	if err != nil {
		if errors.Is(err, gcalendar.ErrDisabled) || errors.Is(err, gcalendar.ErrEventNotFound) {
			return
		}
		s.logger.Error("notifier: calendar delete failed for booking=%d: %v", booking.ID, err)
		s.observe("calendar", "error")
		return
	}
	s.observe("calendar", "ok")
}

// calendarToken выбирает календарь для бронирования.
// Для неназначенной услуги события пишутся в календарь подключённого
// администратора с наименьшим id: выбор детерминирован между перезапусками.
func (s *Service) calendarToken(ctx context.Context, booking *domain.Booking) (*gcalRepo.Token, bool) {
	adminID := booking.ResponsibleAdminID

	if adminID == nil {
		admins, err := s.tokenRepo.ListConnectedAdmins(ctx)
		if err != nil {
			s.logger.Error("notifier: failed to list connected admins: %v", err)
			return nil, false
		}
		if len(admins) == 0 {
			return nil, false
		}
		adminID = &admins[0]
	}

	token, err := s.tokenRepo.GetByAdminID(ctx, *adminID)
	if err != nil {
		if errors.Is(err, gcalRepo.ErrTokenNotFound) {
			return nil, false
		}
		s.logger.Error("notifier: failed to load calendar token for admin=%d: %v", *adminID, err)
		return nil, false
	}

	return token, true
}

func (s *Service) buildEvent(booking *domain.Booking) gcalendar.Event {
	start := booking.StartsAt(s.location)
	end := start.Add(time.Duration(booking.ServiceDurationMinutes) * time.Minute)

	return gcalendar.Event{
		BookingID: booking.ID,
		Summary:   fmt.Sprintf("%s - %s", booking.ServiceName, booking.ClientName),
		Description: fmt.Sprintf("Cliente: %s\nTelefone: %s\nServiço: %s",
			booking.ClientName, booking.ClientPhone, booking.ServiceName),
		Start:    start,
		End:      end,
		Timezone: s.location.String(),
	}
}

func (s *Service) observe(channel, status string) {
	if s.metrics != nil {
		s.metrics.IncNotification(channel, status)
	}
}
