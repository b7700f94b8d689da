package server

import (
	"bytes"
	"net/http"
	"time"

	"healthlock/internal/audit"
)

func (s *Service) handleGetAudit(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())
	s.writeJSON(w, http.StatusOK, state.AuditEntries())
}

func (s *Service) handleGetAuditSummary(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())
	s.writeJSON(w, http.StatusOK, state.AuditSummary())
}

func (s *Service) handleGetAuditExport(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())

	var buf bytes.Buffer
	if err := audit.WriteCSV(&buf, state.AuditEntries()); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+audit.ExportFilename(time.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.WithError(err).Warn("failed to write audit export")
	}
}
