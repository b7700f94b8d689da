package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"healthlock/internal/crud"
	"healthlock/internal/hospital"
	"healthlock/internal/token"
	"healthlock/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(seed bool) Options {
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return Options{
		Patient:  types.DefaultPatientProfile(),
		Accessor: types.DefaultAccessor(),
		Location: "San Francisco, CA",
		Seed:     seed,
		Logger:   logger,
	}
}

func newState(t *testing.T, seed bool) *State {
	t.Helper()
	s, err := New("test-session", testOptions(seed))
	require.NoError(t, err)
	return s
}

func raw(names ...string) []types.RawFile {
	out := make([]types.RawFile, len(names))
	for i, n := range names {
		out[i] = types.RawFile{Name: n, MimeType: "application/pdf", SizeBytes: int64(1000 * (i + 1))}
	}
	return out
}

func TestNew_Seeded(t *testing.T) {
	s := newState(t, true)

	assert.Equal(t, types.RolePatient, s.Role())
	assert.Len(t, s.Files(), 3)
	assert.Empty(t, s.Tokens())
	assert.Empty(t, s.AuditEntries())
	assert.Equal(t, 6, s.HospitalStats().Total)
}

func TestNew_Empty(t *testing.T) {
	s := newState(t, false)

	assert.Empty(t, s.Files())
	assert.Zero(t, s.HospitalStats().Total)
}

func TestUploadFiles_CountsAndCategories(t *testing.T) {
	s := newState(t, false)
	ctx := context.Background()

	batches := [][]string{
		{"Blood_Panel.pdf"},
		{"xyz.pdf", "MRI_knee.dcm", "Annual REPORT.docx"},
		{},
		{"prescription.jpg", "ct_scan.png"},
	}

	total := 0
	for _, b := range batches {
		s.UploadFiles(ctx, raw(b...))
		total += len(b)
	}

	files := s.Files()
	require.Len(t, files, total)

	want := []types.FileCategory{
		types.CategoryBloodTest,
		types.CategoryOther,
		types.CategoryImaging,
		types.CategoryReport,
		types.CategoryPrescription,
		types.CategoryImaging,
	}
	for i, f := range files {
		assert.Equal(t, want[i], f.Category, f.Name)
		assert.True(t, f.Encrypted)
		assert.Equal(t, int64(i+1), f.ID)
	}

	// the empty batch is a no-op and leaves no audit entry
	assert.Len(t, s.AuditEntries(), 3)
}

func TestUploadFiles_AuditEntry(t *testing.T) {
	s := newState(t, true)
	s.SetRole(types.RolePharmacist)

	added := s.UploadFiles(context.Background(), raw("a.pdf", "b.pdf"))
	require.Len(t, added, 2)
	assert.Equal(t, int64(4), added[0].ID, "ids continue after the seeded files")

	entries := s.AuditEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, types.ActionFileUpload, entries[0].Action)
	assert.Equal(t, "Uploaded 2 file(s)", entries[0].Details)
	assert.Equal(t, "pharmacist", entries[0].Actor)
	assert.True(t, entries[0].Simulated)
}

func TestIssueToken(t *testing.T) {
	s := newState(t, true)
	file, err := s.FileByID(1)
	require.NoError(t, err)

	tok := s.IssueToken(context.Background(), file, types.AccessReadOnly)

	assert.Equal(t, token.ValidityWindow, tok.ValidUntil.Sub(tok.CreatedAt))
	assert.False(t, tok.Used)
	assert.Equal(t, types.AccessReadOnly, tok.AccessLevel)
	assert.Equal(t, file.Name, tok.FileName)

	entries := s.AuditEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, types.ActionQRGenerated, entries[0].Action)
	assert.Equal(t, fmt.Sprintf("Token %s for %s (read-only access)", tok.ID, file.Name), entries[0].Details)
	assert.Equal(t, "patient", entries[0].Actor)

	got, err := s.TokenByID(tok.ID)
	require.NoError(t, err)
	assert.Equal(t, tok, got)
}

func TestIssueToken_DoesNotValidateFile(t *testing.T) {
	s := newState(t, false)

	ghost := types.HealthFile{ID: 99, Name: "ghost.pdf"}
	tok := s.IssueToken(context.Background(), ghost, types.AccessFull)

	assert.Equal(t, int64(99), tok.FileID)
	assert.Len(t, s.Tokens(), 1)
}

func TestIssueTokenForFile_Missing(t *testing.T) {
	s := newState(t, true)

	_, err := s.IssueTokenForFile(context.Background(), 42, types.AccessFull)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Empty(t, s.Tokens())
	assert.Empty(t, s.AuditEntries())
}

func TestRecordAccess_UpdatesOnlyThatToken(t *testing.T) {
	s := newState(t, true)
	ctx := context.Background()

	var issued []types.AccessToken
	for id := int64(1); id <= 3; id++ {
		tok, err := s.IssueTokenForFile(ctx, id, types.AccessFull)
		require.NoError(t, err)
		issued = append(issued, tok)
	}

	accessed, err := s.RecordAccess(ctx, issued[1].ID)
	require.NoError(t, err)
	assert.True(t, accessed.Used)
	require.NotNil(t, accessed.DoctorName)
	require.NotNil(t, accessed.HospitalName)
	assert.Equal(t, "Dr. Michael Chen", *accessed.DoctorName)
	assert.Equal(t, "San Francisco General Hospital", *accessed.HospitalName)

	tokens := s.Tokens()
	assert.Equal(t, issued[0], tokens[0])
	assert.Equal(t, accessed, tokens[1])
	assert.Equal(t, issued[2], tokens[2])

	entries := s.AuditEntries()
	assert.Equal(t, types.ActionRecordAccess, entries[0].Action)
	assert.Equal(t, "doctor", entries[0].Actor)
	assert.Equal(t, fmt.Sprintf("Dr. Michael Chen accessed %s via QR token %s", issued[1].FileName, issued[1].ID), entries[0].Details)

	stats := s.Stats()
	assert.Equal(t, 2, stats.ActiveTokens)
	assert.Equal(t, 1, stats.AccessedTokens)
}

func TestRecordAccess_Terminal(t *testing.T) {
	s := newState(t, true)
	ctx := context.Background()

	tok, err := s.IssueTokenForFile(ctx, 2, types.AccessPartial)
	require.NoError(t, err)
	_, err = s.RecordAccess(ctx, tok.ID)
	require.NoError(t, err)
	auditLen := len(s.AuditEntries())

	_, err = s.RecordAccess(ctx, tok.ID)
	assert.ErrorIs(t, err, ErrTokenUsed)
	assert.Len(t, s.AuditEntries(), auditLen)

	_, err = s.RecordAccess(ctx, "HLK-NOPE")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRecordAccess_IgnoresExpiry(t *testing.T) {
	now := time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC)
	opts := testOptions(true)
	opts.Now = func() time.Time { return now }
	s, err := New("clocked", opts)
	require.NoError(t, err)

	tok, err := s.IssueTokenForFile(context.Background(), 1, types.AccessFull)
	require.NoError(t, err)

	now = now.Add(72 * time.Hour)
	_, err = s.RecordAccess(context.Background(), tok.ID)
	assert.NoError(t, err)
}

func TestAddAudit_NewestFirst(t *testing.T) {
	s := newState(t, false)
	ctx := context.Background()

	first := s.AddAudit(ctx, "Custom", "first", "")
	second := s.AddAudit(ctx, "Custom", "second", "doctor")

	entries := s.AuditEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, second, entries[0])
	assert.Equal(t, first, entries[1])
	assert.Equal(t, "patient", first.Actor)
	assert.Equal(t, "doctor", second.Actor)
}

func TestHospital_SaveAndDelete(t *testing.T) {
	s := newState(t, true)
	ctx := context.Background()

	_, _, err := s.SaveEntity(ctx, hospital.Patients, map[string]string{"name": ""}, "")
	var verr *crud.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, s.HospitalStats().Patients)

	created, notice, err := s.SaveEntity(ctx, hospital.Patients, map[string]string{"name": "Ada"}, "")
	require.NoError(t, err)
	assert.Equal(t, crud.NoticeAdded, notice)
	assert.Equal(t, "P003", created.ID)

	doctorsBefore := s.HospitalStats().Doctors
	notice, err = s.DeleteEntity(ctx, hospital.Patients, "P001")
	require.NoError(t, err)
	assert.Equal(t, crud.NoticeDeleted, notice)
	assert.Equal(t, 2, s.HospitalStats().Patients)
	assert.Equal(t, doctorsBefore, s.HospitalStats().Doctors)
	assert.Equal(t, 2, s.HospitalStats().Appointments, "no cascade to appointments")
}

func TestHospital_SelectEntityType(t *testing.T) {
	s := newState(t, true)

	view, err := s.SelectEntityType(hospital.Patients, "smith")
	require.NoError(t, err)
	require.Len(t, view.Records, 1)
	assert.Equal(t, "P002", view.Records[0].ID)

	view, err = s.SelectEntityType(hospital.Doctors, "")
	require.NoError(t, err)
	assert.Equal(t, hospital.Doctors, view.EntityType)
	assert.Empty(t, view.Query)
	assert.Len(t, view.Records, 2)

	_, err = s.SelectEntityType("billing", "")
	assert.ErrorIs(t, err, crud.ErrUnknownEntityType)
	assert.Equal(t, hospital.Doctors, s.HospitalView().EntityType)
}
