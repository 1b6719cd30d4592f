package timerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mcarrasqub/itimer/internal/domain"
	"github.com/mcarrasqub/itimer/internal/ports"
)

const (
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 10 * time.Second

	CSRFCookieName    = "csrftoken"
	SessionCookieName = "sessionid"
	csrfHeader        = "X-CSRFToken"
)

// Client talks to the session timer endpoints of the practice backend.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var (
	_ ports.StatusSource = (*Client)(nil)
	_ ports.TickReporter = (*Client)(nil)
	_ ports.TokenSource  = (*Client)(nil)
)

func NewClient(baseURL string, httpClient *http.Client, requestTimeout time.Duration) *Client {
	return &Client{BaseURL: baseURL, HTTPClient: httpClient, RequestTimeout: requestTimeout}
}

type statusResponse struct {
	Status           string          `json:"status"`
	Message          json.RawMessage `json:"message"`
	RemainingSeconds json.RawMessage `json:"remaining_seconds"`
	ProgressRatio    json.RawMessage `json:"progress_ratio"`
}

type tickRequest struct {
	SecondsPassed int `json:"seconds_passed"`
}

type tickResponse struct {
	Success       bool            `json:"success"`
	Status        string          `json:"status"`
	Message       json.RawMessage `json:"message"`
	ProgressRatio json.RawMessage `json:"progress_ratio"`
	Error         string          `json:"error"`
}

func (c *Client) FetchStatus(ctx context.Context, sessionID string) (domain.SessionStatus, error) {
	if err := ctx.Err(); err != nil {
		return domain.SessionStatus{}, err
	}

	endpoint, err := c.sessionURL(sessionID, "timer/")
	if err != nil {
		return domain.SessionStatus{}, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.SessionStatus{}, fmt.Errorf("create status request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return domain.SessionStatus{}, fmt.Errorf("fetch timer status: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.SessionStatus{}, fmt.Errorf("fetch timer status: %w: status %d", domain.ErrStatusUnavailable, resp.StatusCode)
	}

	var payload statusResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return domain.SessionStatus{}, fmt.Errorf("decode timer status: %w", err)
	}

	status := domain.SessionStatus{
		Status:        domain.ParseTimerState(payload.Status),
		Message:       decodeString(payload.Message),
		ProgressRatio: decodeFloat(payload.ProgressRatio),
	}
	if remaining := decodeFloat(payload.RemainingSeconds); remaining != nil {
		seconds := int(*remaining)
		status.RemainingSeconds = &seconds
	}

	return status, nil
}

func (c *Client) ReportTick(ctx context.Context, sessionID string, secondsPassed int, csrfToken string) (domain.TickReply, error) {
	if err := ctx.Err(); err != nil {
		return domain.TickReply{}, err
	}

	endpoint, err := c.sessionURL(sessionID, "timer/tick/")
	if err != nil {
		return domain.TickReply{}, err
	}

	body, err := json.Marshal(tickRequest{SecondsPassed: secondsPassed})
	if err != nil {
		return domain.TickReply{}, fmt.Errorf("encode tick request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.TickReply{}, fmt.Errorf("create tick request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(csrfHeader, csrfToken)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return domain.TickReply{}, fmt.Errorf("report tick: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var payload tickResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if decodeErr == nil && payload.Error != "" {
			return domain.TickReply{}, fmt.Errorf("report tick: %w: %s", domain.ErrTickRejected, payload.Error)
		}
		return domain.TickReply{}, fmt.Errorf("report tick: %w: status %d", domain.ErrTickRejected, resp.StatusCode)
	}
	if decodeErr != nil {
		return domain.TickReply{}, fmt.Errorf("decode tick response: %w", decodeErr)
	}

	reply := domain.TickReply{
		Success:       payload.Success,
		Status:        strings.ToUpper(strings.TrimSpace(payload.Status)),
		Message:       decodeString(payload.Message),
		ProgressRatio: decodeFloat(payload.ProgressRatio),
	}
	return reply, nil
}

// CSRFToken returns the csrftoken cookie the jar holds for the base URL, or
// an empty string when there is none.
func (c *Client) CSRFToken() string {
	return CookieValue(c.httpClient().Jar, c.BaseURL, CSRFCookieName)
}

func (c *Client) sessionURL(sessionID string, suffix string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", domain.ErrNoSession
	}

	return buildAPIURL(c.BaseURL, "api/sessions/"+url.PathEscape(sessionID)+"/"+suffix)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// decodeFloat accepts only JSON numbers; null, strings and absent fields
// decode to nil.
func decodeFloat(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	return &value
}

// decodeString accepts only JSON strings; any other value reads as absent.
func decodeString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
