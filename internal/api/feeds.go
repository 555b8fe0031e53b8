package api

import (
	"net/http"

	"github.com/feedline/yml-feed-parser/internal/fetcher"
)

type feedRequest struct {
	URL string `json:"url" validate:"required"`
}

// validateFeedHandler checks a feed url without any network traffic.
func (s *Server) validateFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req feedRequest
	if err := readJSON(w, r, &req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "url is required")
		return
	}

	_ = s.jsonResponse(w, http.StatusOK, fetcher.ValidateFeedURL(req.URL))
}

// parseFeedHandler validates the url and enqueues a parse command.
func (s *Server) parseFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req feedRequest
	if err := readJSON(w, r, &req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "url is required")
		return
	}

	if validation := fetcher.ValidateFeedURL(req.URL); !validation.Valid {
		s.jsonError(w, http.StatusUnprocessableEntity, validation.Message)
		return
	}

	if err := s.commander.SendParseCommand(r.Context(), req.URL); err != nil {
		s.internalError(w, r, err)
		return
	}

	_ = s.jsonResponse(w, http.StatusAccepted, map[string]string{"status": "queued"})
}
