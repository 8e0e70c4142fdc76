//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	infranotify "meet-scheduler/internal/infra/notify"
	"meet-scheduler/internal/pkg/config"
	"meet-scheduler/internal/usecase/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotifier(endpoint string) *infranotify.WebhookNotifier {
	cfg := config.NewTestConfig()
	cfg.Notify.EmailWorkerURL = endpoint
	cfg.Notify.Timeout = 5 * time.Second
	return infranotify.NewWebhookNotifier(cfg)
}

func TestDispatch(t *testing.T) {
	t.Run("posts the notification as JSON", func(t *testing.T) {
		var received notify.Notification
		var contentType string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType = r.Header.Get("Content-Type")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		n := notify.Notification{
			Type:        notify.KindApproval,
			To:          "ada@example.com",
			Name:        "Ada Lovelace",
			MeetingType: "Pleasant Talk",
			Date:        "2026-03-09",
			Time:        "09:00",
		}
		require.NoError(t, newNotifier(srv.URL).Dispatch(context.Background(), n))

		assert.Equal(t, "application/json", contentType)
		assert.Equal(t, notify.KindApproval, received.Type)
		assert.Equal(t, "ada@example.com", received.To)
		assert.Equal(t, "2026-03-09", received.Date)
	})

	t.Run("non-2xx responses are errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "worker unavailable", http.StatusBadGateway)
		}))
		defer srv.Close()

		err := newNotifier(srv.URL).Dispatch(context.Background(), notify.Notification{Type: notify.KindApproval})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "worker unavailable")
	})

	t.Run("no endpoint means a silent no-op", func(t *testing.T) {
		err := newNotifier("").Dispatch(context.Background(), notify.Notification{Type: notify.KindApproval})
		assert.NoError(t, err)
	})
}
