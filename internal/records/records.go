// Package records turns upload metadata into HealthFile values.
package records

import (
	"strings"
	"time"

	"healthlock/pkg/types"
)

// categoryRules are evaluated in order; the first rule with a matching
// substring wins.
var categoryRules = []struct {
	needles  []string
	category types.FileCategory
}{
	{[]string{"blood"}, types.CategoryBloodTest},
	{[]string{"mri", "scan"}, types.CategoryImaging},
	{[]string{"prescription"}, types.CategoryPrescription},
	{[]string{"report"}, types.CategoryReport},
}

// Categorize infers a file category from its name, case-insensitively.
func Categorize(name string) types.FileCategory {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, needle := range rule.needles {
			if strings.Contains(lower, needle) {
				return rule.category
			}
		}
	}
	return types.CategoryOther
}

func NewHealthFile(id int64, raw types.RawFile, uploadedAt time.Time) *types.HealthFile {
	size := raw.SizeBytes
	if size < 0 {
		size = 0
	}

	return &types.HealthFile{
		ID:              id,
		Name:            raw.Name,
		MimeType:        raw.MimeType,
		SizeBytes:       size,
		UploadTimestamp: uploadedAt,
		Encrypted:       true,
		Category:        Categorize(raw.Name),
	}
}
