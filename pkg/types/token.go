package types

import (
	"fmt"
	"time"
)

type AccessLevel string

const (
	AccessFull     AccessLevel = "full"
	AccessPartial  AccessLevel = "partial"
	AccessReadOnly AccessLevel = "read-only"
)

func ParseAccessLevel(s string) (AccessLevel, error) {
	switch l := AccessLevel(s); l {
	case AccessFull, AccessPartial, AccessReadOnly:
		return l, nil
	}
	return "", fmt.Errorf("unknown access level %q", s)
}

// AccessToken grants nominal, time-boxed access to one HealthFile. FileID is
// a weak reference and ValidUntil is never enforced.
type AccessToken struct {
	ID           string      `json:"id"`
	FileID       int64       `json:"fileId"`
	FileName     string      `json:"fileName"`
	AccessLevel  AccessLevel `json:"accessLevel"`
	ValidUntil   time.Time   `json:"validUntil"`
	QRData       string      `json:"qrData"`
	CreatedAt    time.Time   `json:"createdAt"`
	Used         bool        `json:"used"`
	PatientName  string      `json:"patientName"`
	DoctorName   *string     `json:"doctorName,omitempty"`
	HospitalName *string     `json:"hospitalName,omitempty"`
}

// QRPayload is the document serialised into AccessToken.QRData. Timestamps
// are kept as the strings that were encoded.
type QRPayload struct {
	TokenID  string         `json:"tokenId"`
	Patient  PatientProfile `json:"patient"`
	File     QRFile         `json:"file"`
	Access   QRAccess       `json:"access"`
	Security QRSecurity     `json:"security"`
}

type QRFile struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Category   FileCategory `json:"category"`
	UploadDate string       `json:"uploadDate"`
	Size       int64        `json:"size"`
}

type QRAccess struct {
	Level      AccessLevel `json:"level"`
	ValidUntil string      `json:"validUntil"`
	CreatedAt  string      `json:"createdAt"`
}

type QRSecurity struct {
	Encrypted bool   `json:"encrypted"`
	Checksum  string `json:"checksum"`
}
