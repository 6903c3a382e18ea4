package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client клиент push-релея
type Client struct {
	url        string
	apiKey     string
	enabled    bool
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр push-клиента
func NewClient(url, apiKey string, enabled bool, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:     url,
		apiKey:  apiKey,
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Notify отправляет уведомление на одно устройство
func (c *Client) Notify(ctx context.Context, deviceToken, title, body string) error {
	if !c.enabled {
		return ErrDisabled
	}

	notification := Notification{
		IdempotencyKey: uuid.NewString(),
		DeviceToken:    deviceToken,
		Title:          title,
		Body:           body,
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	case http.StatusGone, http.StatusNotFound:
		// Подписка устройства протухла, вызывающая сторона может её удалить
		return ErrTokenExpired
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
