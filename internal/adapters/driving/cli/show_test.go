package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classesFixture = `<html><body>
<h1>Ахлах-10а</h1>
<table>
<tr><td></td><td>Даваа</td><td>Мягмар</td></tr>
<tr><td>1</td><td>Математик<br>Б.Бат<br>201</td><td></td></tr>
<tr><td>2</td><td></td><td>Физик</td></tr>
</table>
</body></html>`

const teachersFixture = `<html><body>
<h1>Б.Бат</h1>
<table>
<tr><td></td><td>Даваа</td></tr>
<tr><td>1</td><td>Математик<br>Ахлах-10а</td></tr>
</table>
</body></html>`

// writeFixtures lays out a data directory with both export documents
// and returns CLI args pointing the root command at it.
func writeFixtures(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Classes.html"), []byte(classesFixture), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Teachers.html"), []byte(teachersFixture), 0600))
	return []string{"--data-dir", dir, "--config", filepath.Join(dir, "config.toml")}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configPath, dataDir = "", ""
		// Flag values are sticky across Execute calls.
		showCmd.Flags().Set("week", "odd") //nolint:errcheck
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestShowCmd_Class(t *testing.T) {
	args := append(writeFixtures(t), "show", "class", "Ахлах-10а")

	out, err := execute(t, args...)

	require.NoError(t, err)
	assert.Contains(t, out, "Ахлах-10а (odd week)")
	assert.Contains(t, out, "Математик / Б.Бат / 201")
	assert.Contains(t, out, "Физик")
	assert.Contains(t, out, "Даваа")
}

func TestShowCmd_Teacher(t *testing.T) {
	args := append(writeFixtures(t), "show", "teacher", "Б.Бат")

	out, err := execute(t, args...)

	require.NoError(t, err)
	assert.Contains(t, out, "Математик / Ахлах-10а")
}

func TestShowCmd_UnknownName(t *testing.T) {
	args := append(writeFixtures(t), "show", "class", "nope")

	_, err := execute(t, args...)

	assert.Error(t, err)
}

func TestShowCmd_InvalidWeek(t *testing.T) {
	args := append(writeFixtures(t), "show", "class", "Ахлах-10а", "--week", "bogus")

	_, err := execute(t, args...)

	assert.Error(t, err)
}

func TestShowCmd_RejectsUnknownKind(t *testing.T) {
	args := append(writeFixtures(t), "show", "room", "201")

	_, err := execute(t, args...)

	assert.Error(t, err)
}
