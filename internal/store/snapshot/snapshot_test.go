// internal/store/snapshot/snapshot_test.go
package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carts.json")

	in := map[string]int{"a": 1, "b": 2}
	require.NoError(t, Save(path, in))

	var out map[string]int
	require.NoError(t, Load(path, &out))
	assert.Equal(t, in, out)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	var out map[string]int
	assert.ErrorIs(t, Load(path, &out), ErrNotExist)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var out map[string]int
	assert.ErrorIs(t, Load(path, &out), ErrMalformed)
}

func TestLoadRefusesOtherSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 99, "data": {}}`), 0o644))

	var out map[string]int
	assert.ErrorIs(t, Load(path, &out), ErrMalformed)
}

func TestLoadRefusesMismatchedPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrong.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 1, "data": "not-a-map"}`), 0o644))

	var out map[string]int
	assert.ErrorIs(t, Load(path, &out), ErrMalformed)
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "state.json")

	require.NoError(t, Save(path, []string{"x"}))

	var out []string
	require.NoError(t, Load(path, &out))
	assert.Equal(t, []string{"x"}, out)
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	require.NoError(t, Save(path, 42))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, Save(path, 1))

	assert.NoError(t, Remove(path))
	assert.NoError(t, Remove(path))
}
