package server

import (
	"net/http"

	"healthlock/internal/token"
	"healthlock/pkg/types"
)

type issueTokenForm struct {
	FileID      int64  `form:"file_id"`
	AccessLevel string `form:"access_level"`
}

type tokenResponse struct {
	Token   types.AccessToken `json:"token"`
	Payload *types.QRPayload  `json:"payload"`
}

func (s *Service) handleGetTokens(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())
	s.writeJSON(w, http.StatusOK, state.Tokens())
}

func (s *Service) handlePostToken(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	var f issueTokenForm
	if err := decoder.Decode(&f, r.PostForm); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	if f.AccessLevel == "" {
		f.AccessLevel = string(types.AccessFull)
	}
	level, err := types.ParseAccessLevel(f.AccessLevel)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tok, err := state.IssueTokenForFile(r.Context(), f.FileID, level)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, tok)
}

func (s *Service) handleGetToken(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())

	tok, err := state.TokenByID(r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	payload, err := token.DecodePayload(tok.QRData)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, tokenResponse{Token: tok, Payload: payload})
}

func (s *Service) handleGetTokenQR(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())

	tok, err := state.TokenByID(r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	png, err := token.RenderPNG(tok.QRData, s.config.QRImageSize)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+token.PNGFilename(tok.ID)+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		s.logger.WithError(err).Warn("failed to write qr png")
	}
}

func (s *Service) handlePostTokenAccess(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())

	tok, err := state.RecordAccess(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, tok)
}
