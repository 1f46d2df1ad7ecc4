package forecast

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"commerce-linker/core/metrics"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const chatCompletionsPath = "/v1/chat/completions"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client predicts segment impressions through an OpenAI-compatible chat
// completions endpoint guarded by a circuit breaker.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	trip       tripPolicy
	cooldown   time.Duration
	cb         *gobreaker.CircuitBreaker[[]int]
	log        *zap.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTripAfter opens the breaker after n consecutive failures and keeps it
// open for cooldown.
func WithTripAfter(n uint32, cooldown time.Duration) Option {
	return func(c *Client) {
		c.trip = func(counts gobreaker.Counts) bool { return counts.ConsecutiveFailures >= n }
		c.cooldown = cooldown
	}
}

// New creates a forecasting client.
func New(cfg Config, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		cfg:     cfg,
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		httpClient: &http.Client{Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		}},
		trip:     defaultTrip,
		cooldown: 2 * time.Minute,
		log:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cb = newBreaker(c.trip, c.cooldown, log)
	return c
}

// Enabled reports whether model calls are configured.
func (c *Client) Enabled() bool {
	return c.cfg.Enabled && c.baseURL != ""
}

// Predict asks the model for the next Config.Horizon days of impressions.
func (c *Client) Predict(ctx context.Context, criteria Criteria, history []int) ([]int, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	return c.cb.Execute(func() ([]int, error) {
		return c.complete(ctx, buildPrompt(criteria, history, c.cfg.Days()))
	})
}

// Forecast returns the model prediction, or the trend fallback when the model
// is disabled, unavailable or unparseable. Short model replies are completed
// from the fallback. The boolean reports whether the model answered.
func (c *Client) Forecast(ctx context.Context, criteria Criteria, history []int) ([]int, bool) {
	days := c.cfg.Days()
	fallback := Fallback(history, days)

	values, err := c.Predict(ctx, criteria, history)
	switch {
	case err == nil:
		metrics.ForecastRequestsTotal.WithLabelValues("model").Inc()
		if len(values) < days {
			values = append(values, fallback[len(values):]...)
		}
		return values, true
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.ForecastRequestsTotal.WithLabelValues("rejected").Inc()
		c.log.Debug("Forecast circuit open, using fallback")
	case errors.Is(err, ErrDisabled):
		metrics.ForecastRequestsTotal.WithLabelValues("fallback").Inc()
	default:
		metrics.ForecastRequestsTotal.WithLabelValues("fallback").Inc()
		c.log.Warn("Forecast request failed, using fallback", zap.Error(err))
	}
	return fallback, false
}

func (c *Client) complete(ctx context.Context, prompt string) ([]int, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   1000,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, ErrNoPrediction
	}
	return parsePredictions(out.Choices[0].Message.Content, c.cfg.Days())
}
