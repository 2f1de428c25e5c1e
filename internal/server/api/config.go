// Package api provides HTTP API handlers for the MouseControl application.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/ricmed/mouse-control/internal/app"
)

// ConfigHandler handles HTTP requests for the runtime configuration
// and the tracking and calibration controls.
type ConfigHandler struct {
	app *app.App
}

// NewConfigHandler creates a new ConfigHandler for the given application.
func NewConfigHandler(a *app.App) *ConfigHandler {
	return &ConfigHandler{app: a}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *ConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/config":
		switch r.Method {
		case http.MethodGet:
			h.getConfig(w, r)
		case http.MethodPatch, http.MethodPut:
			h.updateConfig(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case "/api/tracking":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.setTracking(w, r)
	case "/api/calibrate":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.calibrate(w, r)
	case "/api/status":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, h.app.Status())
	default:
		http.NotFound(w, r)
	}
}

// Request and response types

type updateConfigRequest struct {
	Sensitivity     *float64 `json:"sensitivity"`
	SingleThreshold *float64 `json:"single_threshold"`
	DoubleThreshold *float64 `json:"double_threshold"`
	SmoothingWindow *int     `json:"smoothing_window"`
}

type configResponse struct {
	Sensitivity     float64 `json:"sensitivity"`
	ScaleFactor     float64 `json:"scale_factor"`
	SingleThreshold float64 `json:"single_threshold"`
	DoubleThreshold float64 `json:"double_threshold"`
	SmoothingWindow int     `json:"smoothing_window"`
	Tracking        bool    `json:"tracking"`
	Calibrating     bool    `json:"calibrating"`
}

type setTrackingRequest struct {
	Tracking bool `json:"tracking"`
}

// currentConfig builds a configResponse from the live parameter snapshot.
func (h *ConfigHandler) currentConfig() configResponse {
	snap := h.app.Params().Snapshot()
	return configResponse{
		Sensitivity:     snap.Sensitivity,
		ScaleFactor:     snap.ScaleFactor,
		SingleThreshold: snap.SingleThreshold,
		DoubleThreshold: snap.DoubleThreshold,
		SmoothingWindow: snap.SmoothingWindow,
		Tracking:        snap.Tracking,
		Calibrating:     snap.Calibrating,
	}
}

// getConfig handles GET /api/config and returns the current parameters.
func (h *ConfigHandler) getConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.currentConfig())
}

// updateConfig handles PATCH /api/config. Only the fields present in the
// request body are changed; the rest keep their current values.
func (h *ConfigHandler) updateConfig(w http.ResponseWriter, r *http.Request) {
	var req updateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	params := h.app.Params()
	snap := params.Snapshot()

	if req.Sensitivity != nil {
		params.SetSensitivity(*req.Sensitivity)
	}
	if req.SingleThreshold != nil || req.DoubleThreshold != nil {
		single := snap.SingleThreshold
		double := snap.DoubleThreshold
		if req.SingleThreshold != nil {
			single = *req.SingleThreshold
		}
		if req.DoubleThreshold != nil {
			double = *req.DoubleThreshold
		}
		params.SetClickThresholds(single, double)
	}
	if req.SmoothingWindow != nil {
		params.SetSmoothingWindow(*req.SmoothingWindow)
	}

	if err := h.app.SaveSettings(); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	writeJSON(w, http.StatusOK, h.currentConfig())
}

// setTracking handles POST /api/tracking and toggles pointer control.
func (h *ConfigHandler) setTracking(w http.ResponseWriter, r *http.Request) {
	var req setTrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.app.SetTracking(req.Tracking)
	writeJSON(w, http.StatusOK, h.currentConfig())
}

// calibrate handles POST /api/calibrate and starts a calibration pass.
// The pass completes asynchronously once a steady hand is detected;
// progress is visible on the status feed.
func (h *ConfigHandler) calibrate(w http.ResponseWriter, r *http.Request) {
	h.app.RequestCalibration()
	writeJSON(w, http.StatusAccepted, h.currentConfig())
}
