// Package adapter contains the filesystem and store adapters backing the
// dreamsort workflow. The domain layer only sees the interfaces defined
// here, so its logic stays testable without touching the disk.
package adapter

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	m "dreamsort.dev/pkg/dreamsort/internal/model"
	"dreamsort.dev/pkg/dreamsort/pkg/natsort"
)

// scanWorkers bounds how many mod directories are hashed concurrently.
const scanWorkers = 4

// ErrModNotFound is returned when a named mod directory does not exist
// under the mods root.
var ErrModNotFound = errors.New("mod not found")

// ErrModExists is returned when installing over an already-present mod.
var ErrModExists = errors.New("mod already exists")

// ModFSAdapter abstracts the mods root directory: scanning its mod trees,
// applying rename plans, and installing or removing mods.
type ModFSAdapter interface {
	// ScanMods walks every mod directory under root and returns the load
	// order with each mod's contributed files and content hashes.
	ScanMods(ctx context.Context, root m.Path) (m.ScanResult, error)

	// ApplyRenames applies a rename plan in two phases: every source is
	// parked under a temporary name before any final name is written, so a
	// failure mid-way never merges two mods.
	ApplyRenames(ctx context.Context, root m.Path, ops []m.RenameOp) error

	// InstallDir copies the directory at src into the mods root under the
	// given name. Installing over an existing mod fails with ErrModExists.
	InstallDir(ctx context.Context, src, root m.Path, name string) error

	// RemoveMod deletes a mod directory and everything under it.
	RemoveMod(ctx context.Context, root m.Path, name string) error
}

// LocalModFSAdapter implements ModFSAdapter against the local filesystem.
type LocalModFSAdapter struct{}

// NewLocalModFSAdapter constructs a LocalModFSAdapter ready to be wired
// into the workflow.
func NewLocalModFSAdapter() *LocalModFSAdapter {
	return &LocalModFSAdapter{}
}

// ScanMods reads the mods root and builds the ScanResult: directories in
// natural sort order, the special cheats folder singled out, and per-mod
// file sets hashed with bounded concurrency.
func (a *LocalModFSAdapter) ScanMods(ctx context.Context, root m.Path) (m.ScanResult, error) {
	entries, err := os.ReadDir(string(root))
	if err != nil {
		return m.ScanResult{}, fmt.Errorf("read mods root: %w", err)
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	natsort.Sort(names)

	result := m.ScanResult{Root: root}
	if titleID, _, ok := emulatorLayout(root); ok {
		result.TitleID = titleID
	}

	for _, name := range names {
		if strings.EqualFold(m.StripPrefix(name), "cheats") {
			result.CheatsFolder = name
			break
		}
	}

	mods := make([]m.Mod, 0, len(names))

	for _, name := range names {
		if name == result.CheatsFolder {
			continue
		}

		mods = append(mods, m.Mod{
			Name:      name,
			CleanName: m.StripPrefix(name),
			Enabled:   !m.DisabledName(name),
		})
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(scanWorkers)

	for i := range mods {
		i := i
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return a.scanMod(root, &mods[i])
		})
	}

	if err := group.Wait(); err != nil {
		return m.ScanResult{}, err
	}

	for i := range mods {
		mods[i].Rank = i + 1
	}

	result.Mods = mods

	slog.Debug("scanned mods root", "root", root, "mods", len(mods), "cheatsFolder", result.CheatsFolder)

	return result, nil
}

// scanMod fills one mod's cheat-only flag and file set. Any directory named
// "cheats" is skipped at every depth; those files belong to the emulator's
// cheat engine, not the overlay.
func (a *LocalModFSAdapter) scanMod(root m.Path, mod *m.Mod) error {
	modPath := filepath.Join(string(root), mod.Name)

	top, err := os.ReadDir(modPath)
	if err != nil {
		return fmt.Errorf("read mod %q: %w", mod.Name, err)
	}

	hasCheats, hasRomfs := false, false

	for _, entry := range top {
		if !entry.IsDir() {
			continue
		}

		switch strings.ToLower(entry.Name()) {
		case "cheats":
			hasCheats = true
		case "romfs":
			hasRomfs = true
		}
	}

	mod.CheatOnly = hasCheats && !hasRomfs
	mod.Files = make(map[m.RelPath]string)

	err = filepath.Walk(modPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if strings.EqualFold(info.Name(), "cheats") {
				return filepath.SkipDir
			}

			return nil
		}

		rel, err := filepath.Rel(modPath, path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)
		if strings.HasPrefix(rel, "../") || filepath.IsAbs(rel) {
			return fmt.Errorf("path escapes mod %q: %s", mod.Name, rel)
		}

		hash, err := hashFile(path)
		if err != nil {
			return fmt.Errorf("hash %s: %w", rel, err)
		}

		mod.Files[m.RelPath(rel)] = hash

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// ApplyRenames parks every source directory first, then moves each to its
// final name. Target collisions abort before anything is touched.
func (a *LocalModFSAdapter) ApplyRenames(ctx context.Context, root m.Path, ops []m.RenameOp) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	targets := make(map[string]struct{}, len(ops))
	sources := make(map[string]struct{}, len(ops))

	for _, op := range ops {
		if _, dup := targets[op.To]; dup {
			return fmt.Errorf("rename plan targets %q twice", op.To)
		}

		targets[op.To] = struct{}{}
		sources[op.From] = struct{}{}
	}

	for _, op := range ops {
		// A target that is itself being renamed away frees up in phase 1.
		if _, ok := sources[op.To]; ok {
			continue
		}

		if _, err := os.Stat(filepath.Join(string(root), op.To)); err == nil {
			return fmt.Errorf("rename target %q already exists", op.To)
		}
	}

	// Phase 1: park everything out of the way.
	for _, op := range ops {
		from := filepath.Join(string(root), op.From)
		temp := filepath.Join(string(root), op.From+m.TempRenameSuffix)

		if err := os.Rename(from, temp); err != nil {
			return fmt.Errorf("park mod %q: %w", op.From, err)
		}
	}

	// Phase 2: settle final names.
	for _, op := range ops {
		temp := filepath.Join(string(root), op.From+m.TempRenameSuffix)
		to := filepath.Join(string(root), op.To)

		if err := os.Rename(temp, to); err != nil {
			return fmt.Errorf("rename mod %q to %q: %w", op.From, op.To, err)
		}

		slog.Debug("renamed mod", "from", op.From, "to", op.To)
	}

	return nil
}

// InstallDir copies the mod directory at src into the mods root.
func (a *LocalModFSAdapter) InstallDir(ctx context.Context, src, root m.Path, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(string(src))
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("source %q is not a directory", src)
	}

	dst := filepath.Join(string(root), name)
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("%w: %q", ErrModExists, name)
	}

	return filepath.Walk(string(src), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return os.MkdirAll(target, info.Mode())
		}

		return copyFile(path, target, info.Mode())
	})
}

// RemoveMod deletes the named mod directory.
func (a *LocalModFSAdapter) RemoveMod(ctx context.Context, root m.Path, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(string(root), name)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %q", ErrModNotFound, name)
		}

		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a mod directory", name)
	}

	return os.RemoveAll(path)
}

// hashFile computes the SHA-256 hash of a file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// copyFile copies a single file, creating parent directories as needed.
func copyFile(src, dst string, mode os.FileMode) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(dst, mode)
}
