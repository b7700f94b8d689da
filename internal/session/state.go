// Package session holds the per-browser-session HealthLock state.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"healthlock/internal/audit"
	"healthlock/internal/crud"
	"healthlock/internal/hospital"
	"healthlock/internal/records"
	"healthlock/internal/seed"
	"healthlock/internal/token"
	"healthlock/internal/utils"
	"healthlock/pkg/types"

	"github.com/sirupsen/logrus"
)

var (
	ErrFileNotFound  = errors.New("file not found")
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenUsed     = errors.New("token already accessed")
)

type Options struct {
	Patient  types.PatientProfile
	Accessor types.Accessor
	Location string
	Seed     bool
	Now      func() time.Time
	Logger   logrus.FieldLogger
}

// State is the mutable store of one session. Every method runs under the
// state's lock and returns copies.
type State struct {
	mu sync.Mutex

	id        string
	createdAt time.Time
	role      types.Role

	files      []*types.HealthFile
	lastFileID int64
	tokens     []*types.AccessToken

	audit     *audit.Log
	issuer    *token.Issuer
	accessor  types.Accessor
	workspace *crud.Workspace

	now    func() time.Time
	logger logrus.FieldLogger
}

func New(id string, opts Options) (*State, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	engine := crud.NewEngine(hospital.Schemas()...)
	if opts.Seed {
		if err := seed.SeedHospital(engine); err != nil {
			return nil, fmt.Errorf("seed hospital records: %w", err)
		}
	}

	workspace, err := crud.NewWorkspace(engine, hospital.Patients)
	if err != nil {
		return nil, fmt.Errorf("create hospital workspace: %w", err)
	}

	s := &State{
		id:        id,
		createdAt: now(),
		role:      types.RolePatient,
		audit: audit.NewLog(
			audit.WithClock(now),
			audit.WithOriginSource(audit.SimulatedOrigin(opts.Location)),
		),
		issuer:    token.NewIssuer(opts.Patient, token.WithClock(now)),
		accessor:  opts.Accessor,
		workspace: workspace,
		now:       now,
		logger:    logger.WithField("session_id", id),
	}

	if opts.Seed {
		for _, f := range seed.Files() {
			s.files = append(s.files, &f)
			s.lastFileID = max(s.lastFileID, f.ID)
		}
	}

	return s, nil
}

func (s *State) ID() string {
	return s.id
}

func (s *State) CreatedAt() time.Time {
	return s.createdAt
}

func (s *State) Role() types.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

func (s *State) SetRole(role types.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
}

// UploadFiles adds one HealthFile per raw file and records a single audit
// entry for the batch. An empty batch changes nothing.
func (s *State) UploadFiles(ctx context.Context, raw []types.RawFile) []types.HealthFile {
	if len(raw) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	uploadedAt := s.now().UTC()
	added := make([]types.HealthFile, 0, len(raw))
	for _, r := range raw {
		s.lastFileID++
		f := records.NewHealthFile(s.lastFileID, r, uploadedAt)
		s.files = append(s.files, f)
		added = append(added, *f)
	}

	s.audit.Record(ctx, types.ActionFileUpload, fmt.Sprintf("Uploaded %d file(s)", len(raw)), string(s.role))
	filesUploadedTotal.Add(float64(len(raw)))

	s.logger.WithField("count", len(raw)).Debug("files uploaded")

	return added
}

func (s *State) Files() []types.HealthFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.HealthFile, len(s.files))
	for i, f := range s.files {
		out[i] = *f
	}
	return out
}

func (s *State) FileByID(id int64) (types.HealthFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.fileByID(id)
	if err != nil {
		return types.HealthFile{}, err
	}
	return *f, nil
}

func (s *State) fileByID(id int64) (*types.HealthFile, error) {
	for _, f := range s.files {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrFileNotFound, id)
}

// IssueToken creates a token for file. The file is not checked against the
// session's file list.
func (s *State) IssueToken(ctx context.Context, file types.HealthFile, level types.AccessLevel) types.AccessToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issueToken(ctx, file, level)
}

// IssueTokenForFile resolves fileID in this session and issues a token for
// it.
func (s *State) IssueTokenForFile(ctx context.Context, fileID int64, level types.AccessLevel) (types.AccessToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.fileByID(fileID)
	if err != nil {
		return types.AccessToken{}, err
	}
	return s.issueToken(ctx, *f, level), nil
}

func (s *State) issueToken(ctx context.Context, file types.HealthFile, level types.AccessLevel) types.AccessToken {
	t := s.issuer.Issue(file, level)
	s.tokens = append(s.tokens, t)

	s.audit.Record(ctx, types.ActionQRGenerated,
		fmt.Sprintf("Token %s for %s (%s access)", t.ID, file.Name, level),
		string(s.role),
	)
	tokensIssuedTotal.WithLabelValues(string(level)).Inc()

	s.logger.WithFields(logrus.Fields{
		"token_id":     t.ID,
		"file_id":      file.ID,
		"access_level": level,
	}).Debug("token issued")

	return *t
}

// RecordAccess simulates a scan of the token with tokenID. Tokens move from
// active to accessed exactly once.
func (s *State) RecordAccess(ctx context.Context, tokenID string) (types.AccessToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.tokenByID(tokenID)
	if err != nil {
		return types.AccessToken{}, err
	}
	if t.Used {
		return *t, fmt.Errorf("%w: %s", ErrTokenUsed, tokenID)
	}

	t.Used = true
	t.DoctorName = utils.StringPtr(s.accessor.DoctorName)
	t.HospitalName = utils.StringPtr(s.accessor.HospitalName)

	s.audit.Record(ctx, types.ActionRecordAccess,
		fmt.Sprintf("%s accessed %s via QR token %s", s.accessor.DoctorName, t.FileName, t.ID),
		string(types.RoleDoctor),
	)
	recordAccessTotal.Inc()

	s.logger.WithField("token_id", t.ID).Debug("token accessed")

	return *t, nil
}

func (s *State) Tokens() []types.AccessToken {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.AccessToken, len(s.tokens))
	for i, t := range s.tokens {
		out[i] = *t
	}
	return out
}

func (s *State) TokenByID(id string) (types.AccessToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.tokenByID(id)
	if err != nil {
		return types.AccessToken{}, err
	}
	return *t, nil
}

func (s *State) tokenByID(id string) (*types.AccessToken, error) {
	for _, t := range s.tokens {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTokenNotFound, id)
}

// AddAudit appends an entry. An empty actor means the current role.
func (s *State) AddAudit(ctx context.Context, action, details, actor string) types.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if actor == "" {
		actor = string(s.role)
	}
	return s.audit.Record(ctx, action, details, actor)
}

func (s *State) AuditEntries() []types.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.audit.Entries()
}

func (s *State) AuditSummary() audit.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.audit.Summary()
}

func (s *State) Stats() types.SessionStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := types.SessionStats{
		Files:        len(s.files),
		Tokens:       len(s.tokens),
		AuditEntries: s.audit.Len(),
	}
	for _, t := range s.tokens {
		if t.Used {
			stats.AccessedTokens++
		} else {
			stats.ActiveTokens++
		}
	}
	return stats
}
