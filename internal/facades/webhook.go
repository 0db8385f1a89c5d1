package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-token-withdrawal/internal/models"
	"go.uber.org/zap"
)

// CallbackSecretHeader carries the shared secret alongside the payload field.
const CallbackSecretHeader = "X-Callback-Secret"

// WebhookHTTPFacade posts withdrawal outcomes to the callback endpoint.
type WebhookHTTPFacade struct {
	client *http.Client
	url    string
	log    *zap.SugaredLogger
}

// NewWebhookHTTPFacade creates a new facade posting to url.
func NewWebhookHTTPFacade(client *http.Client, url string, log *zap.SugaredLogger) *WebhookHTTPFacade {
	return &WebhookHTTPFacade{client: client, url: url, log: log}
}

// Post delivers one payload. Any non-2xx response is an error.
func (f *WebhookHTTPFacade) Post(ctx context.Context, payload models.WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(CallbackSecretHeader, payload.CallbackSecret)

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("callback request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("callback responded %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	f.log.Debugw("callback delivered", "request_id", payload.RequestID, "status", payload.Status, "http_status", resp.StatusCode)
	return nil
}
