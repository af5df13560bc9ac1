package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/celiarozalenm/fn-quest-live/internal/email"

	"github.com/gin-gonic/gin"
)

func newEmailRouter(t *testing.T, upstreamStatus int, upstreamBody string) (*gin.Engine, *int32) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var calls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(upstreamStatus)
		w.Write([]byte(upstreamBody))
	}))
	t.Cleanup(upstream.Close)

	client := email.NewClient("test-key", "quest@example.com", "Quest Live")
	client.SetBaseURL(upstream.URL)

	router := gin.New()
	router.POST("/api/send-email", NewEmailHandler(client).SendEmail)
	return router, &calls
}

func postEmail(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSendEmailSuccess(t *testing.T) {
	router, calls := newEmailRouter(t, http.StatusAccepted, "")

	w := postEmail(router, `{
		"to": "player@example.com",
		"subject": "You're in!",
		"template": "registration-confirmation",
		"data": {
			"name": "Ana",
			"sessionDate": "2025-02-12",
			"sessionTime": "10:00",
			"sessionId": "3",
			"registrationId": "abc-123"
		}
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp SendEmailResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if got := atomic.LoadInt32(calls); got != 1 {
		t.Errorf("upstream called %d times, want 1", got)
	}
}

func TestSendEmailMissingFields(t *testing.T) {
	router, calls := newEmailRouter(t, http.StatusAccepted, "")

	// sessionTime is absent, so the request must be rejected before any
	// upstream call is made.
	w := postEmail(router, `{
		"to": "player@example.com",
		"subject": "You're in!",
		"template": "registration-confirmation",
		"data": {"name": "Ana", "sessionDate": "2025-02-12"}
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Missing required fields" {
		t.Errorf("got error %q, want %q", resp.Error, "Missing required fields")
	}
	if got := atomic.LoadInt32(calls); got != 0 {
		t.Errorf("upstream called %d times, want 0", got)
	}
}

func TestSendEmailUnknownTemplate(t *testing.T) {
	router, calls := newEmailRouter(t, http.StatusAccepted, "")

	w := postEmail(router, `{
		"to": "player@example.com",
		"subject": "Hello",
		"template": "password-reset",
		"data": {"name": "Ana", "sessionDate": "2025-02-12", "sessionTime": "10:00"}
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Unknown email template" {
		t.Errorf("got error %q, want %q", resp.Error, "Unknown email template")
	}
	if got := atomic.LoadInt32(calls); got != 0 {
		t.Errorf("upstream called %d times, want 0", got)
	}
}

func TestSendEmailUpstreamFailure(t *testing.T) {
	router, _ := newEmailRouter(t, http.StatusBadGateway, `{"errors":[{"message":"quota exceeded"}]}`)

	w := postEmail(router, `{
		"to": "player@example.com",
		"subject": "You're in!",
		"template": "session-reminder",
		"data": {"name": "Ana", "sessionDate": "2025-02-12", "sessionTime": "10:00"}
	}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want 500: %s", w.Code, w.Body.String())
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Failed to send email" {
		t.Errorf("got error %q, want %q", resp.Error, "Failed to send email")
	}
	if !strings.Contains(resp.Details, "quota exceeded") {
		t.Errorf("expected upstream body in details, got %q", resp.Details)
	}
}
