// Package api exposes HTTP handlers for the MRI noise masking service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"example.com/mrimask/internal/domain"
	"example.com/mrimask/internal/observability"
)

// Handler coordinates HTTP requests with the domain services.
type Handler struct {
	patterns *domain.PatternService
	profiles *domain.ProfileService
	sessions *domain.SessionService
}

// NewHandler builds a Handler.
func NewHandler(patterns *domain.PatternService, profiles *domain.ProfileService, sessions *domain.SessionService) *Handler {
	return &Handler{patterns: patterns, profiles: profiles, sessions: sessions}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/", h.root)
	mux.HandleFunc("/api/mri-patterns", h.patternCollection)
	mux.HandleFunc("/api/mri-patterns/", h.patternByID)
	mux.HandleFunc("/api/sound-profiles", h.profileCollection)
	mux.HandleFunc("/api/sound-profiles/", h.profileByID)
	mux.HandleFunc("/api/sessions", h.sessionCollection)
	mux.HandleFunc("/api/sessions/", h.sessionSubtree)
	mux.HandleFunc("/api/masking-effectiveness/", h.maskingEffectiveness)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root answers the API banner. The trailing-slash pattern also catches
// unknown /api subpaths, which get a 404 here.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/" && r.URL.Path != "/api" {
		writeError(w, http.StatusNotFound, "not_found", "unknown endpoint")
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "MRI Noise Masking API",
		"status":  "active",
	})
}

func (h *Handler) patternCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listPatterns(w, r)
	case http.MethodPost:
		h.createPattern(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) listPatterns(w http.ResponseWriter, r *http.Request) {
	patterns, err := h.patterns.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, patterns)
}

func (h *Handler) patternByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/mri-patterns/")
	if strings.TrimSpace(id) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing pattern id")
		return
	}

	pattern, err := h.patterns.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPatternNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "MRI pattern not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, pattern)
}

func (h *Handler) createPattern(w http.ResponseWriter, r *http.Request) {
	var req CreateMRIPatternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	pattern, err := h.patterns.Create(r.Context(), req.toInput())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, pattern)
}

func (h *Handler) profileCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listProfiles(w, r)
	case http.MethodPost:
		h.createProfile(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profiles.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *Handler) profileByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/sound-profiles/")
	if strings.TrimSpace(id) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing profile id")
		return
	}

	profile, err := h.profiles.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "sound profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateSoundProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	profile, err := h.profiles.Create(r.Context(), req.toInput())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) sessionCollection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	session, err := h.sessions.Create(r.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPatternRef) || errors.Is(err, domain.ErrInvalidProfileRef) {
			writeError(w, http.StatusBadRequest, "invalid_reference", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) sessionSubtree(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	if strings.TrimSpace(rest) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing session id")
		return
	}

	if id, ok := strings.CutSuffix(rest, "/complete"); ok {
		h.completeSession(w, r, id)
		return
	}
	if strings.Contains(rest, "/") {
		writeError(w, http.StatusNotFound, "not_found", "unknown endpoint")
		return
	}
	h.getSession(w, r, rest)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	session, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) completeSession(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	if strings.TrimSpace(id) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing session id")
		return
	}

	var comfortRating *int
	if raw := r.URL.Query().Get("comfort_rating"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", "comfort_rating must be an integer")
			return
		}
		comfortRating = &parsed
	}

	if err := h.sessions.Complete(r.Context(), id, comfortRating); err != nil {
		switch {
		case errors.Is(err, domain.ErrRatingOutOfRange):
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		case errors.Is(err, domain.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "not_found", "session not found")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Session completed successfully"})
}

func (h *Handler) maskingEffectiveness(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/masking-effectiveness/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "expected /api/masking-effectiveness/{mri_id}/{sound_id}")
		return
	}

	pattern, err := h.patterns.Get(r.Context(), parts[0])
	if err != nil {
		if errors.Is(err, domain.ErrPatternNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Pattern or profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	profile, err := h.profiles.Get(r.Context(), parts[1])
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Pattern or profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	report := domain.ScoreMasking(*pattern, *profile)
	observability.ObserveMaskingScore(report.EffectivenessScore)
	writeJSON(w, http.StatusOK, report)
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
