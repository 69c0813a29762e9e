package mailer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"portfolio/internal/config"
)

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestClient(baseURL string) *Client {
	return NewClient(config.MailConfig{
		APIBaseURL: baseURL,
		APIKey:     "test-key",
		OwnerEmail: "owner@example.com",
		OwnerName:  "Portfolio Owner",
	}, newTestLogger())
}

func TestSendContactNotification(t *testing.T) {
	var got sendRequest
	var gotAuth, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.SendContactNotification(context.Background(),
		"John Doe", "john@example.com", "+1234567890", "Job Inquiry", "Hello there")
	require.NoError(t, err)

	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, "/v1/email/send", gotPath)
	require.Equal(t, "owner@example.com", got.To)
	require.Equal(t, "New Contact: Job Inquiry", got.Subject)
	require.Contains(t, got.HTML, "John Doe")
	require.Contains(t, got.HTML, "john@example.com")
	require.Contains(t, got.HTML, "+1234567890")
	require.Contains(t, got.Text, "Hello there")
}

func TestSendContactConfirmation(t *testing.T) {
	var got sendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.SendContactConfirmation(context.Background(), "john@example.com", "John Doe")
	require.NoError(t, err)

	require.Equal(t, "john@example.com", got.To)
	require.Equal(t, "Thank You for Your Message", got.Subject)
	require.Contains(t, got.HTML, "John Doe")
	require.Contains(t, got.HTML, "Portfolio Owner")
}

func TestNotificationEscapesVisitorInput(t *testing.T) {
	var got sendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.SendContactNotification(context.Background(),
		"<script>alert(1)</script>", "x@example.com", "", "Hi", "msg msg msg")
	require.NoError(t, err)
	require.NotContains(t, got.HTML, "<script>")
	require.Contains(t, got.HTML, "&lt;script&gt;")
}

func TestMissingCredentials(t *testing.T) {
	client := NewClient(config.MailConfig{OwnerEmail: "owner@example.com"}, newTestLogger())

	err := client.SendContactNotification(context.Background(), "a", "b@example.com", "", "s", "m")
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestAPIErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.SendContactConfirmation(context.Background(), "john@example.com", "John")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}
