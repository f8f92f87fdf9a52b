// internal/store/snapshot/snapshot.go
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SchemaVersion is bumped whenever the serialized shape of a snapshot
// changes. Snapshots written under a different version are refused on load
// instead of being silently misread.
const SchemaVersion = 1

var (
	// ErrNotExist is returned when no snapshot file has been written yet.
	ErrNotExist = errors.New("snapshot does not exist")
	// ErrMalformed is returned for unparseable or version-mismatched
	// snapshots. Callers log it and start from an empty state.
	ErrMalformed = errors.New("snapshot is malformed")
)

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Load reads the snapshot at path into v.
func Load(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotExist
		}
		return err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if env.Version != SchemaVersion {
		return fmt.Errorf("%w: schema version %d, want %d", ErrMalformed, env.Version, SchemaVersion)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// Save writes v to path atomically (temp file plus rename) so a crash
// mid-write never leaves a truncated snapshot behind.
func Save(path string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	env := envelope{Version: SchemaVersion, Data: data}
	payload, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Remove deletes the snapshot at path if present.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
