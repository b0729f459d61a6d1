package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Remote asks an external hydration-advice service for the message. The
// service is opaque: one POST with the total, one message back. Callers fall
// back to totals-only display when it misbehaves.
type Remote struct {
	Endpoint   string
	HTTPClient *http.Client
}

type remoteRequest struct {
	TodayTotalMl int `json:"today_total_ml"`
}

type remoteResponse struct {
	Message string `json:"message"`
}

func (r *Remote) Feedback(ctx context.Context, todayTotalMl int) (string, error) {
	endpoint := strings.TrimSpace(r.Endpoint)
	if endpoint == "" {
		return "", fmt.Errorf("feedback endpoint is not configured")
	}
	httpClient := r.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 8 * time.Second}
	}

	payload, err := json.Marshal(remoteRequest{TodayTotalMl: todayTotalMl})
	if err != nil {
		return "", fmt.Errorf("encode feedback request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create feedback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute feedback request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read feedback response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("feedback request failed with status %d", resp.StatusCode)
	}

	var parsed remoteResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode feedback response: %w", err)
	}
	if strings.TrimSpace(parsed.Message) == "" {
		return "", fmt.Errorf("feedback service returned an empty message")
	}
	return parsed.Message, nil
}
