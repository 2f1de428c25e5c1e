// Package api provides HTTP API handlers for the MouseControl application.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ricmed/mouse-control/internal/app"
	"github.com/ricmed/mouse-control/internal/config"
	"github.com/ricmed/mouse-control/internal/store"
)

// ProfileHandler handles HTTP requests for sensitivity profile resources.
type ProfileHandler struct {
	store *store.Store
	app   *app.App
}

// NewProfileHandler creates a new ProfileHandler with the given store.
// The app may be nil, in which case profile activation is unavailable.
func NewProfileHandler(s *store.Store, a *app.App) *ProfileHandler {
	return &ProfileHandler{store: s, app: a}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Parse the path to determine if this is a collection or item request
	// Expected paths: /api/profiles, /api/profiles/{id} or /api/profiles/{id}/apply
	path := strings.TrimPrefix(r.URL.Path, "/api/profiles")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/profiles
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	if id, ok := strings.CutSuffix(path, "/apply"); ok {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.apply(w, r, id)
		return
	}

	// Item endpoint: /api/profiles/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Request and response types

type profileRequest struct {
	Name            string  `json:"name"`
	Sensitivity     float64 `json:"sensitivity"`
	SingleThreshold float64 `json:"single_threshold"`
	DoubleThreshold float64 `json:"double_threshold"`
	SmoothingWindow int     `json:"smoothing_window"`
}

type profileResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Sensitivity     float64 `json:"sensitivity"`
	SingleThreshold float64 `json:"single_threshold"`
	DoubleThreshold float64 `json:"double_threshold"`
	SmoothingWindow int     `json:"smoothing_window"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type listProfilesResponse struct {
	Profiles []profileResponse `json:"profiles"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toResponse converts a store.Profile to a profileResponse.
func toResponse(p *store.Profile) profileResponse {
	return profileResponse{
		ID:              p.ID,
		Name:            p.Name,
		Sensitivity:     p.Sensitivity,
		SingleThreshold: p.SingleThreshold,
		DoubleThreshold: p.DoubleThreshold,
		SmoothingWindow: p.SmoothingWindow,
		CreatedAt:       p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/profiles and returns all profiles.
func (h *ProfileHandler) list(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.store.Profiles().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list profiles")
		return
	}

	response := listProfilesResponse{
		Profiles: make([]profileResponse, 0, len(profiles)),
	}

	for _, p := range profiles {
		response.Profiles = append(response.Profiles, toResponse(p))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/profiles/{id} and returns a single profile.
func (h *ProfileHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	profile, err := h.store.Profiles().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(profile))
}

// create handles POST /api/profiles and creates a new profile.
// Zero-valued tuning fields fall back to the defaults.
func (h *ProfileHandler) create(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	profile := &store.Profile{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Sensitivity:     req.Sensitivity,
		SingleThreshold: req.SingleThreshold,
		DoubleThreshold: req.DoubleThreshold,
		SmoothingWindow: req.SmoothingWindow,
	}
	if profile.Sensitivity == 0 {
		profile.Sensitivity = config.DefaultSensitivity
	}
	if profile.SingleThreshold == 0 {
		profile.SingleThreshold = config.DefaultClickThreshold
	}
	if profile.DoubleThreshold == 0 {
		profile.DoubleThreshold = config.DefaultClickThreshold
	}
	if profile.SmoothingWindow == 0 {
		profile.SmoothingWindow = config.DefaultSmoothingWindow
	}

	if err := h.store.Profiles().Create(profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create profile")
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(profile))
}

// update handles PUT /api/profiles/{id} and updates an existing profile.
func (h *ProfileHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	// First, get the existing profile
	profile, err := h.store.Profiles().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Update fields if provided
	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.Sensitivity != 0 {
		profile.Sensitivity = req.Sensitivity
	}
	if req.SingleThreshold != 0 {
		profile.SingleThreshold = req.SingleThreshold
	}
	if req.DoubleThreshold != 0 {
		profile.DoubleThreshold = req.DoubleThreshold
	}
	if req.SmoothingWindow != 0 {
		profile.SmoothingWindow = req.SmoothingWindow
	}

	if err := h.store.Profiles().Update(profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(profile))
}

// delete handles DELETE /api/profiles/{id} and removes a profile.
func (h *ProfileHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Profiles().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// apply handles POST /api/profiles/{id}/apply and makes the profile's
// tuning parameters the live configuration.
func (h *ProfileHandler) apply(w http.ResponseWriter, r *http.Request, id string) {
	if h.app == nil {
		writeError(w, http.StatusServiceUnavailable, "Application not available")
		return
	}

	profile, err := h.store.Profiles().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	h.app.ApplyProfile(profile)
	if err := h.app.SaveSettings(); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(profile))
}
