// Package api exposes the engine to the UI layer over a small JSON HTTP
// surface. Rendering is the UI's concern; this layer only translates requests
// into orchestrator, interaction and geocode calls.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"news_engine/internal/domain"
	"news_engine/internal/geocode"
	"news_engine/internal/service"
)

type Server struct {
	orchestrator *service.Orchestrator
	interactions *service.Interactions
	geocoder     *geocode.Cache
	logger       *slog.Logger
	mux          *http.ServeMux
}

func New(
	orchestrator *service.Orchestrator,
	interactions *service.Interactions,
	geocoder *geocode.Cache,
	logger *slog.Logger,
) *Server {
	s := &Server{
		orchestrator: orchestrator,
		interactions: interactions,
		geocoder:     geocoder,
		logger:       logger.With("component", "api"),
		mux:          http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /news", s.handleNews)
	s.mux.HandleFunc("POST /interactions", s.handleInteraction)
	s.mux.HandleFunc("GET /geocode/reverse", s.handleReverseGeocode)
	s.mux.HandleFunc("GET /geocode/forward", s.handleForwardGeocode)
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	locale := domain.Locale{City: q.Get("city"), Country: q.Get("country")}
	if locale.IsZero() {
		// No explicit locale: resolve from coordinates. The geocoder falls
		// back to the default location, so this always yields a locale.
		lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
		lon, errLon := strconv.ParseFloat(q.Get("lon"), 64)
		if errLat != nil || errLon != nil {
			httpError(w, http.StatusBadRequest, "city/country or lat/lon required")
			return
		}
		loc := s.geocoder.ReverseGeocode(r.Context(), lat, lon)
		locale = loc.Locale()
	}

	tab := domain.Tab(q.Get("tab"))
	if tab == "" {
		tab = domain.TabLatest
	}

	page, _ := strconv.Atoi(q.Get("page"))

	records, err := s.orchestrator.GetNews(r.Context(), locale, tab, page)
	if err != nil {
		s.logger.Error("get news failed", "city", locale.City, "error", err)
		httpError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"records": records})
}

type interactionRequest struct {
	Type        domain.InteractionType `json:"type"`
	Fingerprint string                 `json:"fingerprint"`
	UserID      string                 `json:"user_id"`
	CommentText string                 `json:"comment_text"`
	Channel     string                 `json:"channel"`
	PollID      string                 `json:"poll_id"`
	PollOption  string                 `json:"poll_option"`
}

func (s *Server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Fingerprint == "" {
		httpError(w, http.StatusBadRequest, "fingerprint required")
		return
	}

	ctx := r.Context()
	var in *domain.Interaction
	var err error

	switch req.Type {
	case domain.InteractionLike:
		in, err = s.interactions.Like(ctx, req.UserID, req.Fingerprint)
	case domain.InteractionUnlike:
		in, err = s.interactions.Unlike(ctx, req.UserID, req.Fingerprint)
	case domain.InteractionComment:
		in, err = s.interactions.Comment(ctx, req.UserID, req.Fingerprint, req.CommentText)
	case domain.InteractionShare:
		in, err = s.interactions.Share(ctx, req.UserID, req.Fingerprint, req.Channel)
	case domain.InteractionPollVote:
		in, err = s.interactions.PollVote(ctx, req.UserID, req.Fingerprint, req.PollID, req.PollOption)
	default:
		httpError(w, http.StatusBadRequest, "unknown interaction type")
		return
	}

	if err != nil {
		// Local queue write failed: this is the one storage error that must
		// surface, or the user believes an interaction was recorded when it
		// wasn't.
		s.logger.Error("queue interaction failed", "type", req.Type, "error", err)
		httpError(w, http.StatusInternalServerError, "failed to record interaction")
		return
	}

	writeJSON(w, http.StatusAccepted, in)
}

func (s *Server) handleReverseGeocode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(q.Get("lon"), 64)
	if errLat != nil || errLon != nil {
		httpError(w, http.StatusBadRequest, "lat and lon required")
		return
	}

	loc := s.geocoder.ReverseGeocode(r.Context(), lat, lon)
	writeJSON(w, http.StatusOK, loc)
}

func (s *Server) handleForwardGeocode(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		httpError(w, http.StatusBadRequest, "address required")
		return
	}

	loc, err := s.geocoder.ForwardGeocode(r.Context(), address)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			httpError(w, http.StatusNotFound, "address not found")
			return
		}
		// Provider outage, not a missing address.
		s.logger.Error("forward geocode failed", "error", err)
		httpError(w, http.StatusBadGateway, "geocoding unavailable")
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
