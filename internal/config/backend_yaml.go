package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// YAMLBackend keeps settings in a single YAML document keyed by fully
// qualified setting names. Each commit rewrites the file atomically.
type YAMLBackend struct {
	mu     sync.Mutex
	path   string
	values map[string]any
}

// OpenYAMLBackend loads path, treating a missing file as empty settings.
func OpenYAMLBackend(path string) (*YAMLBackend, error) {
	if path == "" {
		return nil, fmt.Errorf("yaml backend requires a settings path")
	}

	b := &YAMLBackend{path: path, values: make(map[string]any)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &b.values); err != nil {
		return nil, fmt.Errorf("error parsing settings %s: %w", path, err)
	}
	if b.values == nil {
		b.values = make(map[string]any)
	}
	return b, nil
}

func (b *YAMLBackend) Lookup(key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	v, ok := b.values[key]
	if !ok {
		return "", false, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", false, fmt.Errorf("error encoding setting %q: %w", key, err)
	}
	return string(raw), true, nil
}

func (b *YAMLBackend) Commit(values map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := make(map[string]any, len(b.values)+len(values))
	for k, v := range b.values {
		next[k] = v
	}
	for k, raw := range values {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return fmt.Errorf("error decoding setting %q: %w", k, err)
		}
		next[k] = v
	}

	data, err := yaml.Marshal(next)
	if err != nil {
		return fmt.Errorf("error serializing settings: %w", err)
	}
	if err := writeFileAtomic(b.path, data); err != nil {
		return err
	}

	b.values = next
	return nil
}

func (b *YAMLBackend) Close() error {
	return nil
}

// writeFileAtomic writes data to a temp file next to path and renames it over
// path, so a crash never leaves a truncated settings file behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("error creating settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp settings file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing settings: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error flushing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing settings: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error saving settings: %w", err)
	}
	return nil
}
