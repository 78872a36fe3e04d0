package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/lesson-booking/api"
	"github.com/metinatakli/lesson-booking/internal/mailer"
	"github.com/metinatakli/lesson-booking/internal/mocks"
	"github.com/metinatakli/lesson-booking/internal/validator"
)

func newTestApplication(opts ...func(*application)) *application {
	app := &application{
		validator:         validator.NewValidator(),
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		mailer:            mailer.NewMockMailer(),
		sessionManager:    scs.New(),
		paymentProvider:   &mocks.MockPaymentProvider{},
		lessonPaymentRepo: &mocks.MockLessonPaymentRepo{},
		eventStore:        &mocks.MockEventStore{},
	}

	app.config.env = "test"
	app.config.corsOrigins = []string{"*"}
	app.config.stripe.publishableKey = "pk_test_123"

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func setupTestSession(t *testing.T, app *application, r *http.Request) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "")
	if err != nil {
		t.Errorf("Failed to load session: %v", err)
	}

	return r.WithContext(ctx)
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var resp T
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	return resp
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if w.Code != tt.wantStatus {
		t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
	}

	if tt.wantErrMessage == "" {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if errorResp.Error.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Error.Message, tt.wantErrMessage)
		}
	}
}

func waitForMail(t *testing.T, m *mailer.MockMailer) {
	t.Helper()

	select {
	case <-m.Sent():
	case <-time.After(time.Second):
		t.Fatal("expected an email to be sent")
	}
}

func ptr[T any](v T) *T {
	return &v
}
