package audit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"healthlock/internal/utils"
	"healthlock/pkg/types"
)

const csvHeader = "Timestamp,Action,Details,Actor,IP Address,Location"

// WriteCSV writes entries with every cell quoted, which encoding/csv does
// not do for plain values.
func WriteCSV(w io.Writer, entries []types.AuditEntry) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range entries {
		cells := []string{
			e.Timestamp.UTC().Format(time.RFC3339),
			e.Action,
			e.Details,
			e.Actor,
			e.IP,
			utils.PtrStringOr(e.Location, "N/A"),
		}
		for i, c := range cells {
			cells[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
		}
		if _, err := bw.WriteString("\n" + strings.Join(cells, ",")); err != nil {
			return fmt.Errorf("write csv row %d: %w", e.ID, err)
		}
	}

	return utils.ErrorWrapOrNil(bw.Flush(), "flush csv")
}

func ExportFilename(t time.Time) string {
	return fmt.Sprintf("healthlock-audit-%s.csv", t.UTC().Format(time.DateOnly))
}
