package server

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"healthlock/internal/session"
	"healthlock/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type Service struct {
	logger   *logrus.Logger
	config   *types.Config
	sessions *session.Registry
	cookie   *securecookie.SecureCookie

	handler http.Handler
	server  *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	sessions *session.Registry,
) (*Service, error) {
	mux := flow.New()

	hashKey, err := cookieKey(config.CookieHashKey, 64)
	if err != nil {
		return nil, fmt.Errorf("decode cookie hash key: %w", err)
	}
	blockKey, err := cookieKey(config.CookieBlockKey, 32)
	if err != nil {
		return nil, fmt.Errorf("decode cookie block key: %w", err)
	}

	cookie := securecookie.New(hashKey, blockKey)
	cookie.MaxAge(config.SessionMaxAgeSec)

	s := &Service{
		logger:   logger,
		config:   config,
		sessions: sessions,
		cookie:   cookie,
		handler:  mux,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

// cookieKey decodes a base64 key, generating a random one of size bytes
// when encoded is empty.
func cookieKey(encoded string, size int) ([]byte, error) {
	if encoded == "" {
		return securecookie.GenerateRandomKey(size), nil
	}
	return base64.StdEncoding.DecodeString(encoded)
}

func (s *Service) Handler() http.Handler {
	return s.handler
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.RequestID)
	r.Use(s.LoggingMiddleware)
	r.Use(MetricsMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)
	r.Handle("/metrics", promhttp.Handler(), http.MethodGet)

	r.Group(func(r *flow.Mux) {
		r.Use(s.WithSession)
		if s.config.AuditRequestOrigin {
			r.Use(s.RecordOrigin)
		}

		r.HandleFunc("/session", s.handleGetSession, http.MethodGet)
		r.HandleFunc("/session", s.handleDeleteSession, http.MethodDelete)
		r.HandleFunc("/session/role", s.handlePostRole, http.MethodPost)

		r.HandleFunc("/files", s.handleGetFiles, http.MethodGet)
		r.HandleFunc("/files", s.handlePostFiles, http.MethodPost)

		r.HandleFunc("/tokens", s.handleGetTokens, http.MethodGet)
		r.HandleFunc("/tokens", s.handlePostToken, http.MethodPost)
		r.HandleFunc("/tokens/:id", s.handleGetToken, http.MethodGet)
		r.HandleFunc("/tokens/:id/qr.png", s.handleGetTokenQR, http.MethodGet)
		r.HandleFunc("/tokens/:id/access", s.handlePostTokenAccess, http.MethodPost)

		r.HandleFunc("/audit", s.handleGetAudit, http.MethodGet)
		r.HandleFunc("/audit/summary", s.handleGetAuditSummary, http.MethodGet)
		r.HandleFunc("/audit/export.csv", s.handleGetAuditExport, http.MethodGet)

		r.HandleFunc("/hospital", s.handleGetHospital, http.MethodGet)
		r.HandleFunc("/hospital/schemas", s.handleGetHospitalSchemas, http.MethodGet)
		r.HandleFunc("/hospital/stats", s.handleGetHospitalStats, http.MethodGet)
		r.HandleFunc("/hospital/entities/:type", s.handleGetEntities, http.MethodGet)
		r.HandleFunc("/hospital/entities/:type", s.handlePostEntity, http.MethodPost)
		r.HandleFunc("/hospital/entities/:type/:id", s.handlePostEntity, http.MethodPost)
		r.HandleFunc("/hospital/entities/:type/:id", s.handleDeleteEntity, http.MethodDelete)
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
