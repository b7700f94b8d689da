package server

import (
	"net/http"

	"healthlock/pkg/types"
)

type sessionResponse struct {
	Role     types.Role          `json:"role"`
	Stats    types.SessionStats  `json:"stats"`
	Hospital types.HospitalStats `json:"hospital"`
}

type roleForm struct {
	Role string `form:"role"`
}

func (s *Service) handleGetSession(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())

	s.writeJSON(w, http.StatusOK, sessionResponse{
		Role:     state.Role(),
		Stats:    state.Stats(),
		Hospital: state.HospitalStats(),
	})
}

func (s *Service) handlePostRole(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	var f roleForm
	if err := decoder.Decode(&f, r.PostForm); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	role, err := types.ParseRole(f.Role)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state.SetRole(role)
	s.writeJSON(w, http.StatusOK, map[string]types.Role{"role": role})
}

func (s *Service) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())

	s.sessions.End(state.ID())
	s.clearSessionCookie(w)

	w.WriteHeader(http.StatusNoContent)
}
