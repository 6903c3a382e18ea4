package mailer

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

// Client клиент почтового провайдера
type Client struct {
	url        string
	apiKey     string
	from       string
	enabled    bool
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(url, apiKey, from string, enabled bool, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:     url,
		apiKey:  apiKey,
		from:    from,
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет письмо через HTTP API провайдера.
// Ключ идемпотентности защищает от дублей при ретраях провайдера.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	if !c.enabled {
		return ErrDisabled
	}

	msg := Message{
		IdempotencyKey: uuid.NewString(),
		From:           c.from,
		To:             to,
		Subject:        subject,
		Body:           body,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
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
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
