// Package seed holds the demo data a fresh session starts with.
package seed

import (
	"time"

	"healthlock/pkg/types"
)

// Files returns the sample health records. IDs start at 1; the session
// continues numbering after the last one.
func Files() []types.HealthFile {
	return []types.HealthFile{
		{
			ID:              1,
			Name:            "Blood_Test_Results_2024.pdf",
			MimeType:        "application/pdf",
			SizeBytes:       245760,
			UploadTimestamp: time.Date(2024, 8, 20, 10, 30, 0, 0, time.UTC),
			Encrypted:       true,
			Category:        types.CategoryBloodTest,
		},
		{
			ID:              2,
			Name:            "MRI_Scan_Brain.dcm",
			MimeType:        "application/dicom",
			SizeBytes:       15728640,
			UploadTimestamp: time.Date(2024, 8, 19, 14, 15, 0, 0, time.UTC),
			Encrypted:       true,
			Category:        types.CategoryImaging,
		},
		{
			ID:              3,
			Name:            "Prescription_Antibiotics.pdf",
			MimeType:        "application/pdf",
			SizeBytes:       125000,
			UploadTimestamp: time.Date(2024, 8, 18, 9, 45, 0, 0, time.UTC),
			Encrypted:       true,
			Category:        types.CategoryPrescription,
		},
	}
}
