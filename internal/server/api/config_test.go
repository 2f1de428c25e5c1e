package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ricmed/mouse-control/internal/config"
)

func TestConfigHandler_Get(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)
	handler := NewConfigHandler(a)

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response configResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response.Sensitivity != config.DefaultSensitivity {
		t.Errorf("expected default sensitivity, got %v", response.Sensitivity)
	}
	if response.ScaleFactor != config.DefaultScale {
		t.Errorf("expected default scale factor, got %v", response.ScaleFactor)
	}
	if response.Tracking {
		t.Error("expected tracking to start disabled")
	}
}

func TestConfigHandler_PatchPartialUpdate(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)
	handler := NewConfigHandler(a)

	sensitivity := 1.8
	window := 9
	body, _ := json.Marshal(updateConfigRequest{
		Sensitivity:     &sensitivity,
		SmoothingWindow: &window,
	})

	req := httptest.NewRequest(http.MethodPatch, "/api/config", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	snap := a.Params().Snapshot()
	if snap.Sensitivity != 1.8 {
		t.Errorf("expected sensitivity 1.8, got %v", snap.Sensitivity)
	}
	if snap.SmoothingWindow != 9 {
		t.Errorf("expected smoothing window 9, got %d", snap.SmoothingWindow)
	}

	// Untouched fields keep their values
	if snap.SingleThreshold != config.DefaultClickThreshold {
		t.Errorf("expected single threshold unchanged, got %v", snap.SingleThreshold)
	}
}

func TestConfigHandler_PatchClampsSensitivity(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)
	handler := NewConfigHandler(a)

	sensitivity := 99.0
	body, _ := json.Marshal(updateConfigRequest{Sensitivity: &sensitivity})

	req := httptest.NewRequest(http.MethodPatch, "/api/config", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	if got := a.Params().Snapshot().Sensitivity; got != config.MaxSensitivity {
		t.Errorf("expected sensitivity clamped to %v, got %v", config.MaxSensitivity, got)
	}
}

func TestConfigHandler_PatchInvalidJSON(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)
	handler := NewConfigHandler(a)

	req := httptest.NewRequest(http.MethodPatch, "/api/config", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestConfigHandler_SetTracking(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)
	handler := NewConfigHandler(a)

	body, _ := json.Marshal(setTrackingRequest{Tracking: true})
	req := httptest.NewRequest(http.MethodPost, "/api/tracking", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	if !a.Params().Snapshot().Tracking {
		t.Error("expected tracking enabled")
	}
}

func TestConfigHandler_Calibrate(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)
	handler := NewConfigHandler(a)

	req := httptest.NewRequest(http.MethodPost, "/api/calibrate", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d", http.StatusAccepted, rec.Code)
	}

	if !a.Params().Snapshot().Calibrating {
		t.Error("expected calibrating flag set")
	}
}

func TestConfigHandler_Status(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)
	handler := NewConfigHandler(a)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var status map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if _, ok := status["scale_factor"]; !ok {
		t.Error("expected scale_factor in status payload")
	}
}

func TestConfigHandler_MethodNotAllowed(t *testing.T) {
	s := newTestStore(t)
	a := newTestApp(t, s)
	handler := NewConfigHandler(a)

	req := httptest.NewRequest(http.MethodDelete, "/api/config", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}
