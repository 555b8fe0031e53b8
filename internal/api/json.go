package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/feedline/yml-feed-parser/internal/platform"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) error {
	type envelope struct {
		Data any `json:"data"`
	}
	return writeJSON(w, status, &envelope{Data: data})
}

func (s *Server) jsonError(w http.ResponseWriter, status int, message string) {
	type envelope struct {
		Error  string `json:"error"`
		Status int    `json:"status"`
	}

	if err := writeJSON(w, status, &envelope{Error: message, Status: status}); err != nil {
		s.logger.Error().Err(err).Msg("can't write error response")
	}
}

// internalError logs err and answers with a display-safe message.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error().
		Err(err).
		Str("path", r.URL.Path).
		Msg("request failed")

	s.jsonError(w, http.StatusInternalServerError, "internal server error")
}

// storeError maps storage errors to display-safe responses.
func (s *Server) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, platform.ErrNotFound) {
		s.jsonError(w, http.StatusNotFound, "parameter not found")
		return
	}
	s.internalError(w, r, err)
}
