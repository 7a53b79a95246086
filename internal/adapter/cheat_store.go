package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

// CheatStore reads and writes the cheat files dreamsort manages: per-mod
// cheat definition files and the central enabled.txt.
type CheatStore interface {
	// ReadDefinitions returns the raw contents of every cheat definition
	// file under <root>/<mod>/cheats, keyed by filename. enabled.txt is
	// never a definition file. A mod without a cheats directory yields an
	// empty map.
	ReadDefinitions(root m.Path, mod string) (map[string]string, error)

	// ReadEnabled returns the current enabled.txt body, or "" when the file
	// does not exist yet.
	ReadEnabled(root m.Path, cheatsFolder string) (string, error)

	// WriteEnabled replaces the enabled.txt body, creating the cheats
	// folder if needed.
	WriteEnabled(root m.Path, cheatsFolder string, content string) error

	// EnabledPath returns the enabled.txt location. An empty cheatsFolder
	// means the root has no cheats directory yet and the default name is
	// used.
	EnabledPath(root m.Path, cheatsFolder string) m.Path
}

// LocalCheatStore implements CheatStore on the local filesystem.
type LocalCheatStore struct{}

// NewLocalCheatStore constructs a LocalCheatStore.
func NewLocalCheatStore() *LocalCheatStore {
	return &LocalCheatStore{}
}

// cheatsDir finds the mod's cheats directory regardless of case.
func cheatsDir(root m.Path, mod string) (string, bool, error) {
	base := filepath.Join(string(root), mod)

	entries, err := os.ReadDir(base)
	if err != nil {
		return "", false, fmt.Errorf("read mod %q: %w", mod, err)
	}

	for _, entry := range entries {
		if entry.IsDir() && strings.EqualFold(entry.Name(), "cheats") {
			return filepath.Join(base, entry.Name()), true, nil
		}
	}

	return "", false, nil
}

// ReadDefinitions loads every *.txt cheat file for the mod.
func (s *LocalCheatStore) ReadDefinitions(root m.Path, mod string) (map[string]string, error) {
	dir, ok, err := cheatsDir(root, mod)
	if err != nil {
		return nil, err
	}

	definitions := make(map[string]string)
	if !ok {
		return definitions, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read cheats dir for %q: %w", mod, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".txt") || strings.EqualFold(name, "enabled.txt") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read cheat file %q: %w", name, err)
		}

		definitions[name] = string(data)
	}

	return definitions, nil
}

func enabledPath(root m.Path, cheatsFolder string) string {
	if cheatsFolder == "" {
		cheatsFolder = "cheats"
	}

	return filepath.Join(string(root), cheatsFolder, "enabled.txt")
}

// EnabledPath returns where enabled.txt lives for the given root.
func (s *LocalCheatStore) EnabledPath(root m.Path, cheatsFolder string) m.Path {
	return m.Path(enabledPath(root, cheatsFolder))
}

// ReadEnabled returns the enabled.txt body; a missing file is not an error.
func (s *LocalCheatStore) ReadEnabled(root m.Path, cheatsFolder string) (string, error) {
	data, err := os.ReadFile(enabledPath(root, cheatsFolder))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", fmt.Errorf("read enabled.txt: %w", err)
	}

	return string(data), nil
}

// WriteEnabled replaces enabled.txt, creating the folder on first write.
func (s *LocalCheatStore) WriteEnabled(root m.Path, cheatsFolder string, content string) error {
	path := enabledPath(root, cheatsFolder)

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create cheats directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write enabled.txt: %w", err)
	}

	return nil
}
