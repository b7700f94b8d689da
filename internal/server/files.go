package server

import (
	"net/http"

	"healthlock/pkg/types"
)

const maxUploadMemory = 32 << 20

func (s *Service) handleGetFiles(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())
	s.writeJSON(w, http.StatusOK, state.Files())
}

// handlePostFiles accepts a multipart form with any number of "files" parts.
// Only the metadata of each part is kept.
func (s *Service) handlePostFiles(w http.ResponseWriter, r *http.Request) {
	state := sessionFromContext(r.Context())

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid multipart payload")
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			s.logger.WithError(err).Warn("failed to clean up multipart temp files")
		}
	}()

	headers := r.MultipartForm.File["files"]
	raw := make([]types.RawFile, 0, len(headers))
	for _, fh := range headers {
		raw = append(raw, types.RawFile{
			Name:      fh.Filename,
			MimeType:  fh.Header.Get("Content-Type"),
			SizeBytes: fh.Size,
		})
	}

	added := state.UploadFiles(r.Context(), raw)
	if added == nil {
		added = []types.HealthFile{}
	}

	s.writeJSON(w, http.StatusCreated, added)
}
