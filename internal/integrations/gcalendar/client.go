package gcalendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const bookingIDProperty = "booking_id"

// Client клиент Google Calendar. Работает от stored refresh token
// администратора: браузерный OAuth-флоу выполняется вне этого сервиса.
type Client struct {
	conf    *oauth2.Config
	enabled bool
	log     Logger
}

// NewClient создает новый экземпляр клиента Google Calendar
func NewClient(clientID, clientSecret, redirectURL string, enabled bool, log Logger) *Client {
	return &Client{
		conf: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{calendar.CalendarEventsScope},
			Endpoint:     google.Endpoint,
		},
		enabled: enabled,
		log:     log,
	}
}

func (c *Client) service(ctx context.Context, refreshToken string) (*calendar.Service, error) {
	ts := c.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrInternal, err)
	}
	return svc, nil
}

// CreateEvent создает событие бронирования в календаре администратора.
// Возвращает ID созданного события.
func (c *Client) CreateEvent(ctx context.Context, refreshToken, calendarID string, event Event) (string, error) {
	if !c.enabled {
		return "", ErrDisabled
	}

	svc, err := c.service(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	created, err := svc.Events.Insert(calendarID, &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &calendar.EventDateTime{
			DateTime: event.Start.Format(time.RFC3339),
			TimeZone: event.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: event.End.Format(time.RFC3339),
			TimeZone: event.Timezone,
		},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{
				bookingIDProperty: fmt.Sprintf("%d", event.BookingID),
			},
		},
	}).Context(ctx).Do()

	if err != nil {
		return "", fmt.Errorf("%w: failed to insert event for booking %d: %v", ErrInternal, event.BookingID, err)
	}

	return created.Id, nil
}

// DeleteEvent удаляет событие бронирования, найденное по booking_id
func (c *Client) DeleteEvent(ctx context.Context, refreshToken, calendarID string, bookingID int64) error {
	if !c.enabled {
		return ErrDisabled
	}

	svc, err := c.service(ctx, refreshToken)
	if err != nil {
		return err
	}

	list, err := svc.Events.List(calendarID).
		PrivateExtendedProperty(fmt.Sprintf("%s=%d", bookingIDProperty, bookingID)).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: failed to find event for booking %d: %v", ErrInternal, bookingID, err)
	}

	if len(list.Items) == 0 {
		return ErrEventNotFound
	}

	for _, item := range list.Items {
		if err := svc.Events.Delete(calendarID, item.Id).Context(ctx).Do(); err != nil {
			return fmt.Errorf("%w: failed to delete event %s for booking %d: %v", ErrInternal, item.Id, bookingID, err)
		}
	}

	return nil
}

// UpdateEvent переносит событие бронирования на новые время и описание.
// Реализован как delete+create: проще и устойчивее к расхождению состояния.
func (c *Client) UpdateEvent(ctx context.Context, refreshToken, calendarID string, event Event) (string, error) {
	if !c.enabled {
		return "", ErrDisabled
	}

	if err := c.DeleteEvent(ctx, refreshToken, calendarID, event.BookingID); err != nil && err != ErrEventNotFound {
		return "", err
	}

	return c.CreateEvent(ctx, refreshToken, calendarID, event)
}
