// Package sendgrid is a minimal client for the SendGrid v3 mail send API.
package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/skillup-platform/skillup-backend/internal/platform/httpx"
)

const sendURL = "https://api.sendgrid.com/v3/mail/send"

type Client struct {
	apiKey     string
	httpClient *http.Client
	maxRetries int
}

type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type Message struct {
	From      Address
	To        []Address
	Subject   string
	PlainBody string
	HTMLBody  string
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		maxRetries: 3,
	}
}

type personalization struct {
	To []Address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendPayload struct {
	Personalizations []personalization `json:"personalizations"`
	From             Address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

func (c *Client) Send(ctx context.Context, msg Message) error {
	payload := sendPayload{
		Personalizations: []personalization{{To: msg.To}},
		From:             msg.From,
		Subject:          msg.Subject,
	}
	if msg.PlainBody != "" {
		payload.Content = append(payload.Content, content{Type: "text/plain", Value: msg.PlainBody})
	}
	if msg.HTMLBody != "" {
		payload.Content = append(payload.Content, content{Type: "text/html", Value: msg.HTMLBody})
	}
	if len(payload.Content) == 0 {
		return fmt.Errorf("sendgrid: message has no body")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sendgrid: marshal payload: %w", err)
	}

	backoff := 500 * time.Millisecond
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendURL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("sendgrid: build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if !httpx.IsRetryableError(err) {
				return fmt.Errorf("sendgrid: send: %w", err)
			}
			lastErr = err
			if sleepErr := sleepCtx(ctx, httpx.JitterSleep(backoff)); sleepErr != nil {
				return sleepErr
			}
			backoff *= 2
			continue
		}

		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
		lastErr = fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, string(respBody))
		if !httpx.IsRetryableHTTPStatus(resp.StatusCode) {
			return lastErr
		}
		wait := httpx.RetryAfterDuration(resp, httpx.JitterSleep(backoff), 30*time.Second)
		if sleepErr := sleepCtx(ctx, wait); sleepErr != nil {
			return sleepErr
		}
		backoff *= 2
	}
	return fmt.Errorf("sendgrid: retries exhausted: %w", lastErr)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
