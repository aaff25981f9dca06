package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "timetable.db")
	args := append(writeFixtures(t), "export", "--db", dbPath)
	t.Cleanup(func() {
		exportCmd.Flags().Set("db", "") //nolint:errcheck
	})

	out, err := execute(t, args...)

	require.NoError(t, err)
	assert.Contains(t, out, "saved 1 classes sections")
	assert.Contains(t, out, "saved 1 teachers sections")
	assert.Contains(t, out, dbPath)

	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
