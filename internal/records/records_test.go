package records

import (
	"testing"
	"time"

	"healthlock/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		name string
		want types.FileCategory
	}{
		{"Blood_Panel.pdf", types.CategoryBloodTest},
		{"xyz.pdf", types.CategoryOther},
		{"MRI_Scan_Brain.dcm", types.CategoryImaging},
		{"chest-SCAN.png", types.CategoryImaging},
		{"Prescription_Antibiotics.pdf", types.CategoryPrescription},
		{"discharge report.docx", types.CategoryReport},
		// blood beats every later rule
		{"blood_scan_report.pdf", types.CategoryBloodTest},
		// imaging beats prescription and report
		{"mri_prescription_report.pdf", types.CategoryImaging},
		{"prescription_report.pdf", types.CategoryPrescription},
		{"", types.CategoryOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Categorize(tc.name))
		})
	}
}

func TestNewHealthFile(t *testing.T) {
	at := time.Date(2024, 8, 20, 10, 30, 0, 0, time.UTC)
	f := NewHealthFile(7, types.RawFile{Name: "Lab_Report.pdf", MimeType: "application/pdf", SizeBytes: 2048}, at)

	assert.Equal(t, int64(7), f.ID)
	assert.Equal(t, "Lab_Report.pdf", f.Name)
	assert.Equal(t, "application/pdf", f.MimeType)
	assert.Equal(t, int64(2048), f.SizeBytes)
	assert.Equal(t, at, f.UploadTimestamp)
	assert.True(t, f.Encrypted)
	assert.Equal(t, types.CategoryReport, f.Category)

	neg := NewHealthFile(8, types.RawFile{Name: "x", SizeBytes: -5}, at)
	assert.Zero(t, neg.SizeBytes)
}
