package types

import "time"

type FileCategory string

const (
	CategoryBloodTest    FileCategory = "blood-test"
	CategoryImaging      FileCategory = "imaging"
	CategoryPrescription FileCategory = "prescription"
	CategoryReport       FileCategory = "report"
	CategoryOther        FileCategory = "other"
)

// RawFile is the metadata handed over by the upload surface. File contents
// are never kept.
type RawFile struct {
	Name      string
	MimeType  string
	SizeBytes int64
}

// HealthFile represents an uploaded medical record. It is immutable once
// created.
type HealthFile struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	MimeType        string       `json:"type"`
	SizeBytes       int64        `json:"size"`
	UploadTimestamp time.Time    `json:"uploadDate"`
	Encrypted       bool         `json:"encrypted"`
	Category        FileCategory `json:"category"`
}
