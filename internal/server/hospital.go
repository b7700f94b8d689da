package server

import (
	"net/http"

	"healthlock/internal/crud"
)

func (s *Service) handleGetHospital(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())
	s.writeJSON(w, http.StatusOK, state.HospitalView())
}

func (s *Service) handleGetHospitalSchemas(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())
	s.writeJSON(w, http.StatusOK, state.Schemas())
}

func (s *Service) handleGetHospitalStats(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())
	s.writeJSON(w, http.StatusOK, state.HospitalStats())
}

// handleGetEntities makes :type the active entity type and applies the
// optional q search.
func (s *Service) handleGetEntities(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())

	view, err := state.SelectEntityType(r.PathValue("type"), r.URL.Query().Get("q"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, view)
}

// handlePostEntity creates a record, or edits the record named by :id.
func (s *Service) handlePostEntity(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())
	entityType := r.PathValue("type")
	editingID := r.PathValue("id")

	if err := r.ParseForm(); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	form := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		form[key] = r.PostForm.Get(key)
	}

	record, notice, err := state.SaveEntity(r.Context(), entityType, form, editingID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	status := http.StatusOK
	if notice == crud.NoticeAdded {
		status = http.StatusCreated
	}
	s.writeJSON(w, status, noticeResponse{Notice: string(notice), Record: record})
}

func (s *Service) handleDeleteEntity(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())

	notice, err := state.DeleteEntity(r.Context(), r.PathValue("type"), r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, noticeResponse{Notice: string(notice)})
}
