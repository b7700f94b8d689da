package token

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"healthlock/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleFile = types.HealthFile{
	ID:              1,
	Name:            "Blood_Test_Results_2024.pdf",
	MimeType:        "application/pdf",
	SizeBytes:       245760,
	UploadTimestamp: time.Date(2024, 8, 20, 10, 30, 0, 0, time.UTC),
	Encrypted:       true,
	Category:        types.CategoryBloodTest,
}

func TestIssue(t *testing.T) {
	now := time.Date(2024, 8, 22, 8, 15, 30, 123456789, time.UTC)
	issuer := NewIssuer(types.DefaultPatientProfile(), WithClock(func() time.Time { return now }))

	for _, level := range []types.AccessLevel{types.AccessFull, types.AccessPartial, types.AccessReadOnly} {
		tok := issuer.Issue(sampleFile, level)

		assert.Regexp(t, regexp.MustCompile(`^HLK-[0-9A-Z]{9}$`), tok.ID)
		assert.Equal(t, 24*time.Hour, tok.ValidUntil.Sub(tok.CreatedAt))
		assert.False(t, tok.Used)
		assert.Equal(t, level, tok.AccessLevel)
		assert.Equal(t, sampleFile.ID, tok.FileID)
		assert.Equal(t, sampleFile.Name, tok.FileName)
		assert.Equal(t, "Dr. Sarah Johnson", tok.PatientName)
		assert.Nil(t, tok.DoctorName)
		assert.Nil(t, tok.HospitalName)
	}
}

func TestIssue_Payload(t *testing.T) {
	now := time.Date(2024, 8, 22, 8, 15, 30, 123456789, time.UTC)
	issuer := NewIssuer(types.DefaultPatientProfile(),
		WithClock(func() time.Time { return now }),
		WithIDSource(func() string { return "HLK-ABC123XYZ" }),
	)

	tok := issuer.Issue(sampleFile, types.AccessPartial)

	p, err := DecodePayload(tok.QRData)
	require.NoError(t, err)

	assert.Equal(t, "HLK-ABC123XYZ", p.TokenID)
	assert.Equal(t, types.DefaultPatientProfile(), p.Patient)
	assert.Equal(t, int64(1), p.File.ID)
	assert.Equal(t, types.CategoryBloodTest, p.File.Category)
	assert.Equal(t, "2024-08-20T10:30:00.000Z", p.File.UploadDate)
	assert.Equal(t, int64(245760), p.File.Size)
	assert.Equal(t, types.AccessPartial, p.Access.Level)
	assert.Equal(t, "2024-08-22T08:15:30.123Z", p.Access.CreatedAt)
	assert.Equal(t, "2024-08-23T08:15:30.123Z", p.Access.ValidUntil)
	assert.True(t, p.Security.Encrypted)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-z]{16}$`), p.Security.Checksum)
}

func TestIssue_QRDataFieldNames(t *testing.T) {
	tok := NewIssuer(types.DefaultPatientProfile()).Issue(sampleFile, types.AccessFull)

	for _, key := range []string{`"tokenId"`, `"patient"`, `"bloodType"`, `"uploadDate"`, `"validUntil"`, `"checksum"`} {
		assert.Contains(t, tok.QRData, key)
	}
}

func TestDecodePayload_Invalid(t *testing.T) {
	_, err := DecodePayload("not json")
	assert.Error(t, err)
}

func TestRenderPNG(t *testing.T) {
	tok := NewIssuer(types.DefaultPatientProfile()).Issue(sampleFile, types.AccessFull)

	png, err := RenderPNG(tok.QRData, 300)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))

	art, err := RenderTerminal(tok.QRData)
	require.NoError(t, err)
	assert.NotEmpty(t, art)
}

func TestRender_PayloadTooLarge(t *testing.T) {
	file := sampleFile
	file.Name = strings.Repeat("a", 1200) + ".pdf"
	tok := NewIssuer(types.DefaultPatientProfile()).Issue(file, types.AccessFull)

	_, err := RenderPNG(tok.QRData, 300)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)

	_, err = RenderTerminal(tok.QRData)
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestPNGFilename(t *testing.T) {
	assert.Equal(t, "healthlock-qr-HLK-ABC123XYZ.png", PNGFilename("HLK-ABC123XYZ"))
}
