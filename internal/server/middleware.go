package server

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"healthlock/internal/audit"
	"healthlock/internal/session"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Context key types to avoid collisions
type contextKey string

const (
	contextKeyRequestID contextKey = "request_id"
	contextKeySession   contextKey = "session"

	headerRequestID = "X-Request-ID"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func (s *Service) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)

		ctx := context.WithValue(r.Context(), contextKeyRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		requestID, _ := r.Context().Value(contextKeyRequestID).(string)
		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
			"request_id":  requestID,
		}).Info("http request")
	})
}

// WithSession resolves the caller's session from the session cookie,
// starting a new one when the cookie is missing, invalid or expired.
func (s *Service) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := s.lookupSession(r)
		if state == nil {
			var err error
			state, err = s.sessions.Create()
			if err != nil {
				s.logger.WithError(err).Error("failed to start session")
				s.internalServerError(w)
				return
			}

			if err := s.setSessionCookie(w, state.ID()); err != nil {
				s.logger.WithError(err).Error("failed to encode session cookie")
				s.internalServerError(w)
				return
			}
		}

		ctx := context.WithValue(r.Context(), contextKeySession, state)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Service) lookupSession(r *http.Request) *session.State {
	cookie, err := r.Cookie(s.config.CookieName)
	if err != nil {
		return nil
	}

	var id string
	if err := s.cookie.Decode(s.config.CookieName, cookie.Value, &id); err != nil {
		s.logger.WithError(err).Debug("discarding undecodable session cookie")
		return nil
	}

	state, ok := s.sessions.Get(id)
	if !ok {
		return nil
	}
	return state
}

func (s *Service) setSessionCookie(w http.ResponseWriter, id string) error {
	encoded, err := s.cookie.Encode(s.config.CookieName, id)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   s.config.SessionMaxAgeSec,
		HttpOnly: true,
		Secure:   s.config.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *Service) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// RecordOrigin attaches the client address to the request context so audit
// entries carry it instead of a simulated one.
func (s *Service) RecordOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := audit.WithOrigin(r.Context(), clientIP(r), "")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Only strip if path is not root and has trailing slash
		if path != "/" && strings.HasSuffix(path, "/") {
			newURL := *r.URL
			newURL.Path = strings.TrimSuffix(path, "/")

			http.Redirect(w, r, newURL.String(), http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func sessionFromContext(ctx context.Context) *session.State {
	state, _ := ctx.Value(contextKeySession).(*session.State)
	return state
}
