package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleConfirmation() Confirmation {
	return Confirmation{
		BookingID:   uuid.MustParse("7f1c1c3e-0a0b-4c55-9a57-1f0f3f1b2a10"),
		Name:        "Ada <Lovelace>",
		Email:       "ada@example.com",
		Date:        "2026-10-20",
		Time:        "9:00",
		Guests:      3,
		PancakeType: "blueberry",
		Sides:       []string{"hash browns", "fruit"},
	}
}

func newTestResendNotifier(t *testing.T, baseURL string, cfg ResendConfig) *ResendNotifier {
	t.Helper()
	cfg.BaseURL = baseURL
	n, err := NewResendNotifier(cfg, zap.NewNop())
	require.NoError(t, err)
	return n
}

func TestResendNotifier_PostsRenderedEmail(t *testing.T) {
	var got resend.SendEmailRequest
	var auth, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email_1"}`))
	}))
	defer srv.Close()

	n := newTestResendNotifier(t, srv.URL, ResendConfig{
		APIKey:  "re_test",
		From:    "Eat with Chiso <booking@example.com>",
		ReplyTo: "hello@example.com",
	})

	require.NoError(t, n.SendConfirmation(context.Background(), sampleConfirmation()))
	assert.Equal(t, "/emails", path)
	assert.Equal(t, "Bearer re_test", auth)
	assert.Equal(t, []string{"ada@example.com"}, got.To)
	assert.Equal(t, "hello@example.com", got.ReplyTo)
	assert.Equal(t, confirmationSubject, got.Subject)
	assert.Contains(t, got.Html, "Ada &lt;Lovelace&gt;")
	assert.Contains(t, got.Html, "Tuesday, October 20, 2026")
	assert.Contains(t, got.Text, "- Sides: hash browns, fruit")
	assert.NotContains(t, got.Text, "- Eggs:")
	assert.Contains(t, got.Text, "7f1c1c3e-0a0b-4c55-9a57-1f0f3f1b2a10")
}

func TestResendNotifier_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"invalid from"}`))
	}))
	defer srv.Close()

	n := newTestResendNotifier(t, srv.URL+"/", ResendConfig{APIKey: "k"})
	err := n.SendConfirmation(context.Background(), sampleConfirmation())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid from")
}

func TestResendNotifier_TransportErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	n := newTestResendNotifier(t, url, ResendConfig{APIKey: "k"})
	assert.Error(t, n.SendConfirmation(context.Background(), sampleConfirmation()))
}

func TestNewResendNotifier_RejectsBadBaseURL(t *testing.T) {
	_, err := NewResendNotifier(ResendConfig{APIKey: "k", BaseURL: "http://[::1"}, zap.NewNop())
	assert.Error(t, err)
}

func TestUnconfiguredNotifier_ReportsNotConfigured(t *testing.T) {
	err := NewUnconfiguredNotifier(zap.NewNop()).SendConfirmation(context.Background(), sampleConfirmation())
	assert.ErrorIs(t, err, ErrEmailNotConfigured)
}

func TestMockNotifier_Succeeds(t *testing.T) {
	assert.NoError(t, NewMockNotifier(zap.NewNop()).SendConfirmation(context.Background(), sampleConfirmation()))
}

func TestLongDate_FallsBackOnBadInput(t *testing.T) {
	assert.Equal(t, "not-a-date", longDate("not-a-date"))
}
