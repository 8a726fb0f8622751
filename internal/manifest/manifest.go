// Package manifest reads version manifests from the game directory layout.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blocklaunch/blocklaunch/internal/models"
	"github.com/tidwall/gjson"
)

// ReadError is a fatal manifest failure: file missing, unreadable, or not
// valid JSON. It aborts the launch before any process is spawned.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read manifest %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Manager loads and inspects version manifests.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// Path returns the manifest location for a version under root, following
// the fixed versions/<name>/<name>.json convention.
func (m *Manager) Path(root, name string) string {
	return filepath.Join(root, "versions", name, name+".json")
}

// Load reads and parses one manifest.
func (m *Manager) Load(path string) (*models.VersionManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	var manifest models.VersionManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return &manifest, nil
}

// LoadVersion loads the manifest for a named version under root.
func (m *Manager) LoadVersion(root, name string) (*models.VersionManifest, error) {
	return m.Load(m.Path(root, name))
}

func (m *Manager) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Summary is the subset of manifest fields used for listing.
type Summary struct {
	ID        string
	Type      string
	MainClass string
	Assets    string
}

// Peek extracts the listing fields without a full unmarshal. Listing walks
// every installed version, so it avoids parsing the library arrays.
func (m *Manager) Peek(path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, &ReadError{Path: path, Err: err}
	}
	if !gjson.ValidBytes(data) {
		return Summary{}, &ReadError{Path: path, Err: fmt.Errorf("invalid JSON")}
	}

	fields := gjson.GetManyBytes(data, "id", "type", "mainClass", "assets")
	return Summary{
		ID:        fields[0].String(),
		Type:      fields[1].String(),
		MainClass: fields[2].String(),
		Assets:    fields[3].String(),
	}, nil
}

// ListVersions returns a Summary for every version installed under root,
// in directory order. Directories without a readable manifest are skipped.
func (m *Manager) ListVersions(root string) ([]Summary, error) {
	dir := filepath.Join(root, "versions")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read versions directory: %w", err)
	}

	var summaries []Summary
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		summary, err := m.Peek(filepath.Join(dir, entry.Name(), entry.Name()+".json"))
		if err != nil {
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
