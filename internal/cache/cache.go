// Package cache tracks generated artifacts so unchanged outputs are not
// rewritten on regeneration.
//
// Each style output directory carries a manifest recording the content
// hash of every generated file, keyed by path relative to the output
// directory. A Writer consults the previous manifest and skips writes
// whose content hash is unchanged.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// ManifestFile is the manifest file name inside a style output directory.
const ManifestFile = "manifest.json"

// Manifest records the artifacts generated for one style and theme.
type Manifest struct {
	Style       string            `json:"style"`
	Theme       string            `json:"theme"`
	GeneratedAt time.Time         `json:"generated_at"`
	Artifacts   map[string]string `json:"artifacts"`
}

// NewManifest creates an empty manifest for a style and theme.
func NewManifest(styleName, themeName string) Manifest {
	return Manifest{
		Style:     styleName,
		Theme:     themeName,
		Artifacts: map[string]string{},
	}
}

// Load reads the manifest from dir. A missing manifest file yields an
// empty manifest rather than an error.
func Load(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{Artifacts: map[string]string{}}, nil
		}
		return Manifest{}, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		// A corrupt manifest only disables skip detection; regeneration
		// rewrites it from scratch.
		return Manifest{Artifacts: map[string]string{}}, nil
	}
	if m.Artifacts == nil {
		m.Artifacts = map[string]string{}
	}
	return m, nil
}

// Save writes the manifest to dir atomically (temp file, then rename).
func (m Manifest) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(dir, ManifestFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Hash returns the hex-encoded SHA-256 hash of content.
func Hash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Writer writes generated artifacts into an output directory, skipping
// files whose content is unchanged since the previous generation.
type Writer struct {
	dir     string
	prev    Manifest
	next    Manifest
	force   bool
	written int
	skipped int
}

// NewWriter creates a Writer for the given output directory. When force
// is true every artifact is rewritten regardless of the previous
// manifest. A previous manifest generated for a different theme is
// ignored entirely.
func NewWriter(dir, styleName, themeName string, force bool) (*Writer, error) {
	prev, err := Load(dir)
	if err != nil {
		return nil, err
	}
	if prev.Theme != themeName || prev.Style != styleName {
		prev = NewManifest(styleName, themeName)
	}
	return &Writer{
		dir:   dir,
		prev:  prev,
		next:  NewManifest(styleName, themeName),
		force: force,
	}, nil
}

// Write stores content at rel (slash-separated, relative to the output
// directory). Returns true when the file was actually written, false
// when the cached copy was reused.
func (w *Writer) Write(rel string, content []byte) (bool, error) {
	hash := Hash(content)
	w.next.Artifacts[rel] = hash

	path := filepath.Join(w.dir, filepath.FromSlash(rel))
	if !w.force && w.prev.Artifacts[rel] == hash {
		if _, err := os.Stat(path); err == nil {
			w.skipped++
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, err
	}
	w.written++
	return true, nil
}

// Flush stamps and saves the manifest.
func (w *Writer) Flush() error {
	w.next.GeneratedAt = time.Now()
	return w.next.Save(w.dir)
}

// Written returns the number of files written.
func (w *Writer) Written() int {
	return w.written
}

// Skipped returns the number of files skipped because their content was
// unchanged.
func (w *Writer) Skipped() int {
	return w.skipped
}
