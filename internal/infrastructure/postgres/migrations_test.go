package postgres

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Money columns must be unconstrained NUMERIC. A declared scale makes
// Postgres round on insert — cgst = taxTotal/2 can need more decimal
// places than any fixed scale (e.g. 1.25 × 39.99 @ 28% gives cgst
// 6.99825) — and a rounded half breaks
// grand_total = subtotal + cgst + sgst + igst on the row read back for
// the PDF.
func TestMigrations_NumericColumnsHaveNoScale(t *testing.T) {
	files, err := filepath.Glob("migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files, "migration files must exist")

	scaled := regexp.MustCompile(`(?i)NUMERIC\s*\(`)
	for _, f := range files {
		sql, err := os.ReadFile(f)
		require.NoError(t, err)
		assert.False(t, scaled.Match(sql),
			"%s declares a NUMERIC with precision/scale; money columns must be unconstrained NUMERIC", f)
	}
}
