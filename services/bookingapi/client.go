package bookingapi

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

	"go.uber.org/zap"
)

// ErrNotFound is returned when a search matches no booking.
var ErrNotFound = errors.New("booking not found")

// APIError is a non-2xx response from the booking API, kept structured so
// callers can map status and server-provided detail to user-facing messages.
type APIError struct {
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.Status, string(e.Body))
}

// Detail extracts the server's "detail" field, which may be a string or an
// array of strings. Empty when the body is not JSON or carries no detail.
func (e *APIError) Detail() string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(e.Body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var arr []string
	if err := json.Unmarshal(payload.Detail, &arr); err == nil && len(arr) > 0 {
		return strings.TrimSpace(strings.Join(arr, "; "))
	}
	return ""
}

// Client talks to the external booking/payment API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cannot encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("cannot build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("booking api error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return &APIError{Status: resp.StatusCode, Body: bodyBytes}
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return fmt.Errorf("JSON parse error: %w", err)
		}
	}
	return nil
}

// FetchRoomTypes returns the bookable room categories with their rate tiers.
func (c *Client) FetchRoomTypes(ctx context.Context) ([]RoomRecord, error) {
	var rooms []RoomRecord
	if err := c.do(ctx, http.MethodGet, "/room-types", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Estimate asks the API for the authoritative price breakdown.
func (c *Client) Estimate(ctx context.Context, req EstimateRequest) (*EstimateResponse, error) {
	var est EstimateResponse
	if err := c.do(ctx, http.MethodPost, "/bookings/estimate", req, &est); err != nil {
		return nil, err
	}
	return &est, nil
}

// SearchBooking looks a booking up by transaction id. The endpoint returns
// either an array (first element wins) or a single object; both are accepted.
func (c *Client) SearchBooking(ctx context.Context, txnid string) (*BookingRecord, error) {
	var raw json.RawMessage
	path := "/bookings/search?q=" + url.QueryEscape(txnid)
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	var list []BookingRecord
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, txnid)
		}
		return &list[0], nil
	}

	var record BookingRecord
	if err := json.Unmarshal(raw, &record); err == nil && record.ReferenceCode != "" {
		return &record, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, txnid)
}

// InitiatePayment submits the final booking and returns the hosted-checkout
// redirect parameters.
func (c *Client) InitiatePayment(ctx context.Context, req PaymentInitRequest) (*PaymentInitResponse, error) {
	var resp PaymentInitResponse
	if err := c.do(ctx, http.MethodPost, "/payments/initiate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SendEmail triggers a transactional email through the API.
func (c *Client) SendEmail(ctx context.Context, toEmail, subject, bodyText string) error {
	q := url.Values{}
	q.Set("to_email", toEmail)
	q.Set("subject", subject)
	q.Set("body_text", bodyText)
	return c.do(ctx, http.MethodPost, "/bookings/email/send?"+q.Encode(), nil, nil)
}

// AdminLogin forwards admin credentials and returns the raw session payload.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (map[string]interface{}, error) {
	body := map[string]string{"username": username, "password": password}
	var out map[string]interface{}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
