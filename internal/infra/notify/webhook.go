// Package notify posts notification payloads to the email worker endpoint.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"meet-scheduler/internal/pkg/config"
	"meet-scheduler/internal/pkg/errs"
	"meet-scheduler/internal/usecase/notify"
)

type WebhookNotifier struct {
	endpoint string
	client   *http.Client
}

func NewWebhookNotifier(cfg config.Config) *WebhookNotifier {
	if cfg.Notify.EmailWorkerURL == "" {
		slog.Warn("email worker url not configured; notifications disabled")
	}
	return &WebhookNotifier{
		endpoint: cfg.Notify.EmailWorkerURL,
		client:   &http.Client{Timeout: cfg.Notify.Timeout},
	}
}

// Dispatch posts the notification as JSON. With no endpoint configured it is
// a silent no-op; callers treat any returned error as non-fatal.
func (w *WebhookNotifier) Dispatch(ctx context.Context, n notify.Notification) error {
	if w.endpoint == "" {
		return nil
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build notification request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "notification request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return errs.New("email worker returned " + resp.Status + ": " + string(detail))
	}
	return nil
}
