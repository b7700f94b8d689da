package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"healthlock/internal/crud"
	"healthlock/internal/session"
	"healthlock/internal/token"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type noticeResponse struct {
	Notice string `json:"notice"`
	Record any    `json:"record,omitempty"`
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode json response")
	}
}

func (s *Service) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps store errors onto HTTP statuses. Anything unknown is
// logged and reported as a 500.
func (s *Service) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *crud.ValidationError
	switch {
	case errors.As(err, &verr):
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Error(), Field: verr.Field})
	case errors.Is(err, session.ErrFileNotFound),
		errors.Is(err, session.ErrTokenNotFound),
		errors.Is(err, crud.ErrUnknownEntityType),
		errors.Is(err, crud.ErrEntityNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, token.ErrPayloadTooLarge):
		s.writeError(w, http.StatusUnprocessableEntity, token.ErrPayloadTooLarge.Error())
	case errors.Is(err, session.ErrTokenUsed):
		s.writeError(w, http.StatusConflict, err.Error())
	default:
		s.logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		s.internalServerError(w)
	}
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	s.writeError(w, http.StatusInternalServerError, "internal server error")
}
