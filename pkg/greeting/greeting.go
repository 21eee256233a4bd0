// Package greeting is the client for the external confirmation message
// generator. Given a director name and play title it returns a short
// celebratory message for the registration success screen.
//
// The call is treated as an opaque one-shot collaborator: a single attempt,
// no retry, no caching. Any transport failure, non-2xx status, or empty
// message surfaces as an error to the submission orchestrator.
package greeting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/arshitenyt-bit/kootaah-theater/pkg/errors"
	"github.com/arshitenyt-bit/kootaah-theater/pkg/httpclient"
	"github.com/arshitenyt-bit/kootaah-theater/pkg/logger"
	"github.com/arshitenyt-bit/kootaah-theater/pkg/metrics"
	"go.uber.org/zap"
)

// Generator produces a congratulatory confirmation message for a registration
type Generator interface {
	Generate(ctx context.Context, directorName, playTitle string) (string, error)
}

// request is the wire payload sent to the generator endpoint
type request struct {
	DirectorName string `json:"directorName"`
	PlayTitle    string `json:"playTitle"`
}

// response is the wire payload returned by the generator endpoint
type response struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

var _ Generator = (*Client)(nil)

// Client calls the message generator over HTTP
type Client struct {
	endpoint   string
	apiKey     string
	httpClient httpclient.Client
}

// NewClient creates a new greeting generator client
func NewClient(endpoint, apiKey string, httpClient httpclient.Client) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Configured reports whether a generator endpoint is set
func (c *Client) Configured() bool {
	return strings.TrimSpace(c.endpoint) != ""
}

// Generate requests a confirmation message for the given director and play.
// One attempt only; the caller decides how a failure is surfaced.
func (c *Client) Generate(ctx context.Context, directorName, playTitle string) (string, error) {
	start := time.Now()

	if !c.Configured() {
		return "", fmt.Errorf("greeting endpoint not configured: %w", apperrors.ErrGeneratorFailure)
	}

	body, err := json.Marshal(request{
		DirectorName: directorName,
		PlayTitle:    playTitle,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode greeting request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build greeting request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(ctx, start, "error", zap.Error(err))
		return "", fmt.Errorf("greeting request failed: %w", apperrors.ErrGeneratorFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.record(ctx, start, "error", zap.Int("status_code", resp.StatusCode))
		return "", fmt.Errorf("greeting endpoint returned status %d: %w", resp.StatusCode, apperrors.ErrGeneratorFailure)
	}

	var result response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.record(ctx, start, "error", zap.Error(err))
		return "", fmt.Errorf("failed to decode greeting response: %w", apperrors.ErrGeneratorFailure)
	}

	message := strings.TrimSpace(result.Message)
	if message == "" {
		c.record(ctx, start, "error", zap.String("endpoint_error", result.Error))
		return "", fmt.Errorf("greeting endpoint returned no message: %w", apperrors.ErrGeneratorFailure)
	}

	c.record(ctx, start, "success")
	return message, nil
}

func (c *Client) record(ctx context.Context, start time.Time, status string, fields ...zap.Field) {
	duration := metrics.MeasureDuration(start)
	metrics.GreetingRequestDuration.WithLabelValues(status).Observe(duration)
	metrics.GreetingRequestTotal.WithLabelValues(status).Inc()
	logger.LogAPICall(ctx, "greeting_generator", "generate", status, duration, fields...)
}
