package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-ems/internal/middleware"
)

// BroadcastMessage is the payload forwarded to the relay process. The
// relay fans it out to matching WebSocket clients; it never persists.
type BroadcastMessage struct {
	NotificationID string         `json:"notification_id"`
	CompanyID      string         `json:"company_id"`
	UserID         string         `json:"user_id"`
	Audience       string         `json:"audience"`
	Type           string         `json:"type"`
	Title          string         `json:"title"`
	Message        string         `json:"message"`
	ActionURL      string         `json:"action_url,omitempty"`
	ActionLabel    string         `json:"action_label,omitempty"`
	Meta           map[string]any `json:"meta,omitempty"`
	CreatedAt      string         `json:"created_at"`
}

type RelayClient interface {
	Broadcast(ctx context.Context, msg BroadcastMessage) error
}

type httpRelayClient struct {
	baseURL     string
	internalKey string
	client      *http.Client
}

// NewHTTPRelayClient talks to POST {baseURL}/broadcast. Timeout pendek:
// relay bersifat best-effort, jangan menahan alur utama.
func NewHTTPRelayClient(baseURL, internalKey string) RelayClient {
	return &httpRelayClient{
		baseURL:     baseURL,
		internalKey: internalKey,
		client:      &http.Client{Timeout: 3 * time.Second},
	}
}

func (c *httpRelayClient) Broadcast(ctx context.Context, msg BroadcastMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/broadcast", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.InternalKeyHeader, c.internalKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("relay broadcast rejected: %s", resp.Status)
	}
	return nil
}
