package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"epro/internal/errors"
)

// Mirror persists cache entries as JSON files so a restarted process starts
// warm. Each entry is one file holding the value together with the metadata
// needed to judge freshness on load.
type Mirror struct {
	dir string
}

// mirrorRecord is the on-disk envelope for one cache entry.
type mirrorRecord struct {
	Namespace string          `json:"namespace"`
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	Version   uint64          `json:"version"`
}

// MirrorEntry is a rehydrated cache entry returned by Load.
type MirrorEntry struct {
	Namespace string
	Key       string
	Value     any
	StoredAt  time.Time
	Version   uint64
}

// NewMirror creates a Mirror rooted at dir, creating it if needed.
func NewMirror(dir string) (*Mirror, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create cache mirror dir")
	}
	return &Mirror{dir: dir}, nil
}

// Write persists one entry. The file is written whole, then renamed into
// place so readers never see a partial record.
func (m *Mirror) Write(namespace, key string, value any, storedAt time.Time, version uint64) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "marshal cache value")
	}
	rec := mirrorRecord{
		Namespace: namespace,
		Key:       key,
		Data:      data,
		Timestamp: storedAt,
		Version:   version,
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshal cache record")
	}

	path := m.path(namespace, key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return errors.Wrap(err, "write cache record")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(err, "rename cache record")
	}
	return nil
}

// Remove deletes the mirror file for one entry, if present.
func (m *Mirror) Remove(namespace, key string) {
	_ = os.Remove(m.path(namespace, key))
}

// RemoveNamespace deletes every mirror file belonging to a namespace.
func (m *Mirror) RemoveNamespace(namespace string) {
	matches, err := filepath.Glob(filepath.Join(m.dir, sanitize(namespace)+"__*.json"))
	if err != nil {
		return
	}
	for _, match := range matches {
		_ = os.Remove(match)
	}
}

// Load reads every mirrored entry. Unreadable files are skipped, never fatal.
func (m *Mirror) Load() ([]MirrorEntry, error) {
	matches, err := filepath.Glob(filepath.Join(m.dir, "*.json"))
	if err != nil {
		return nil, errors.Wrap(err, "scan cache mirror dir")
	}

	out := make([]MirrorEntry, 0, len(matches))
	for _, match := range matches {
		payload, err := os.ReadFile(match)
		if err != nil {
			continue
		}
		var rec mirrorRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			continue
		}
		var value any
		if err := json.Unmarshal(rec.Data, &value); err != nil {
			continue
		}
		out = append(out, MirrorEntry{
			Namespace: rec.Namespace,
			Key:       rec.Key,
			Value:     value,
			StoredAt:  rec.Timestamp,
			Version:   rec.Version,
		})
	}
	return out, nil
}

func (m *Mirror) path(namespace, key string) string {
	return filepath.Join(m.dir, sanitize(namespace)+"__"+sanitize(key)+".json")
}

// sanitize keeps file names flat regardless of what the key contains.
func sanitize(s string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", "..", "-", ":", "-")
	return replacer.Replace(s)
}
