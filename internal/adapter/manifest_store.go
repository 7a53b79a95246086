package adapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

// ManifestStore writes the emulator's mods.json for the scanned title.
type ManifestStore interface {
	// PathFor derives the mods.json location from the mods root. The second
	// return is false when the root does not match the emulator's
	// mods/contents/<titleID> layout.
	PathFor(root m.Path) (m.Path, bool)

	// Write persists the manifest entries. A root outside the emulator
	// layout is skipped silently: the overlay still works, only the
	// emulator's own bookkeeping is left alone.
	Write(root m.Path, entries []m.ManifestEntry) error
}

// LocalManifestStore implements ManifestStore on the local filesystem.
type LocalManifestStore struct{}

// NewLocalManifestStore constructs a LocalManifestStore.
func NewLocalManifestStore() *LocalManifestStore {
	return &LocalManifestStore{}
}

// emulatorLayout splits a mods root of the form
// <emulatorRoot>/mods/contents/<titleID> into its parts.
func emulatorLayout(root m.Path) (titleID string, emulatorRoot string, ok bool) {
	norm := filepath.Clean(string(root))
	parts := strings.Split(norm, string(os.PathSeparator))

	if len(parts) < 3 {
		return "", "", false
	}

	if !strings.EqualFold(parts[len(parts)-2], "contents") ||
		!strings.EqualFold(parts[len(parts)-3], "mods") {
		return "", "", false
	}

	titleID = parts[len(parts)-1]
	emulatorRoot = strings.Join(parts[:len(parts)-3], string(os.PathSeparator))

	return titleID, emulatorRoot, true
}

// PathFor maps <root>/mods/contents/<titleID> to
// <root>/games/<titleID>/mods.json.
func (s *LocalManifestStore) PathFor(root m.Path) (m.Path, bool) {
	titleID, emulatorRoot, ok := emulatorLayout(root)
	if !ok {
		return "", false
	}

	return m.Path(filepath.Join(emulatorRoot, "games", titleID, "mods.json")), true
}

// Write renders the manifest with 2-space indentation, the format the
// emulator writes itself.
func (s *LocalManifestStore) Write(root m.Path, entries []m.ManifestEntry) error {
	path, ok := s.PathFor(root)
	if !ok {
		slog.Info("mods root outside emulator layout, skipping mods.json", "root", root)
		return nil
	}

	data, err := json.MarshalIndent(m.Manifest{Mods: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mods.json: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	if err := os.WriteFile(string(path), append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write mods.json: %w", err)
	}

	slog.Debug("wrote manifest", "path", path, "entries", len(entries))

	return nil
}
