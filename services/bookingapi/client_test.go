package bookingapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL, 2*time.Second, zap.NewNop())
}

func TestAPIError_Detail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string detail", `{"detail":"account disabled"}`, "account disabled"},
		{"array detail", `{"detail":["first problem","second problem"]}`, "first problem; second problem"},
		{"no detail", `{"message":"nope"}`, ""},
		{"not json", `<html>boom</html>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := &APIError{Status: 400, Body: []byte(tt.body)}
			assert.Equal(t, tt.want, apiErr.Detail())
		})
	}
}

func TestSearchBooking_ArrayResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ABC123", r.URL.Query().Get("q"))
		w.Write([]byte(`[{"reference_code":"ABC123"},{"reference_code":"IGNORED"}]`))
	}))
	defer srv.Close()

	record, err := newTestClient(srv).SearchBooking(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", record.ReferenceCode, "first element of an array response wins")
}

func TestSearchBooking_SingleObjectResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"reference_code":"ABC123"}`))
	}))
	defer srv.Close()

	record, err := newTestClient(srv).SearchBooking(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", record.ReferenceCode)
}

func TestSearchBooking_EmptyResults(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty array", `[]`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv).SearchBooking(context.Background(), "NOPE")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestSendEmail_QueryParameters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings/email/send", r.URL.Path)
		assert.Equal(t, "guest@example.com", r.URL.Query().Get("to_email"))
		assert.Equal(t, "Hello", r.URL.Query().Get("subject"))
		assert.Equal(t, "Body text", r.URL.Query().Get("body_text"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestClient(srv).SendEmail(context.Background(), "guest@example.com", "Hello", "Body text")
	assert.NoError(t, err)
}

func TestClient_Non2xxBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"not an admin"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).AdminLogin(context.Background(), "user", "pass")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "not an admin", apiErr.Detail())
}
