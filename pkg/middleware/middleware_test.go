package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"montecampo/pkg/logger"
)

func TestRecoveryTurnsPanicInto500(t *testing.T) {
	handler := Recovery(logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/units", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestContentTypeValidation(t *testing.T) {
	handler := ContentTypeValidation(logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	tests := []struct {
		name        string
		method      string
		contentType string
		wantStatus  int
	}{
		{"post json accepted", http.MethodPost, "application/json", http.StatusCreated},
		{"post json with charset accepted", http.MethodPost, "application/json; charset=utf-8", http.StatusCreated},
		{"post form rejected", http.MethodPost, "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{"post missing rejected", http.MethodPost, "", http.StatusUnsupportedMediaType},
		{"get unaffected", http.MethodGet, "", http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/reservations", nil)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestClientRateLimiter(t *testing.T) {
	limiter := NewClientRateLimiter(2, time.Minute, nil, logger.Discard())
	defer limiter.Stop()

	if !limiter.Allow("10.0.0.1") {
		t.Fatal("first request should pass")
	}
	if !limiter.Allow("10.0.0.1") {
		t.Fatal("second request should pass")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("third request should be limited")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Fatal("a different client should not be limited")
	}
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	var calls int32
	handler := Idempotency(store, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"MFX2K1ABCDEF"}}`))
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/reservations", nil)
		req.Header.Set("Idempotency-Key", "booking-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("attempt %d: status = %d, want %d", i, rec.Code, http.StatusCreated)
		}
	}

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("handler invoked %d times, want 1", got)
	}
}

func TestIdempotencyDoesNotCacheFailures(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	var calls int32
	handler := Idempotency(store, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusConflict)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/reservations", nil)
		req.Header.Set("Idempotency-Key", "booking-2")
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("handler invoked %d times, want 2 (conflicts are retryable)", got)
	}
}
