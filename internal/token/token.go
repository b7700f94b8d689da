// Package token issues QR access tokens for health files.
package token

import (
	"encoding/json"
	"fmt"
	"time"

	"healthlock/internal/utils"
	"healthlock/pkg/types"
)

const (
	IDPrefix       = "HLK-"
	ValidityWindow = 24 * time.Hour

	idSuffixLen = 9
	checksumLen = 16

	// ISO-8601 with millisecond precision, always UTC.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type Issuer struct {
	patient     types.PatientProfile
	now         func() time.Time
	newID       func() string
	newChecksum func() string
}

type Option func(*Issuer)

func WithClock(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

func WithIDSource(newID func() string) Option {
	return func(i *Issuer) { i.newID = newID }
}

func NewIssuer(patient types.PatientProfile, opts ...Option) *Issuer {
	i := &Issuer{
		patient: patient,
		now:     time.Now,
		newID: func() string {
			return IDPrefix + utils.NanoIDAlphabet(utils.AlphabetBase36Up, idSuffixLen)
		},
		newChecksum: func() string {
			return utils.NanoIDAlphabet(utils.AlphabetBase36, checksumLen)
		},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// Issue builds an unused token for file. The generated id is not checked
// for uniqueness.
func (i *Issuer) Issue(file types.HealthFile, level types.AccessLevel) *types.AccessToken {
	createdAt := i.now().UTC().Truncate(time.Millisecond)
	validUntil := createdAt.Add(ValidityWindow)
	id := i.newID()

	payload := types.QRPayload{
		TokenID: id,
		Patient: i.patient,
		File: types.QRFile{
			ID:         file.ID,
			Name:       file.Name,
			Category:   file.Category,
			UploadDate: FormatTimestamp(file.UploadTimestamp),
			Size:       file.SizeBytes,
		},
		Access: types.QRAccess{
			Level:      level,
			ValidUntil: FormatTimestamp(validUntil),
			CreatedAt:  FormatTimestamp(createdAt),
		},
		Security: types.QRSecurity{
			Encrypted: true,
			Checksum:  i.newChecksum(),
		},
	}

	return &types.AccessToken{
		ID:          id,
		FileID:      file.ID,
		FileName:    file.Name,
		AccessLevel: level,
		ValidUntil:  validUntil,
		QRData:      string(utils.MustMarshalJSON(payload)),
		CreatedAt:   createdAt,
		Used:        false,
		PatientName: i.patient.Name,
	}
}

// DecodePayload parses QR data back into a payload. Nothing is verified.
func DecodePayload(qrData string) (*types.QRPayload, error) {
	var p types.QRPayload
	if err := json.Unmarshal([]byte(qrData), &p); err != nil {
		return nil, fmt.Errorf("decode qr payload: %w", err)
	}
	return &p, nil
}
