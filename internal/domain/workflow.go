package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"dreamsort.dev/pkg/dreamsort/internal/adapter"
	"dreamsort.dev/pkg/dreamsort/internal/controller"
	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

// ErrUnknownMod is returned when a command names a mod the scan did not
// find.
var ErrUnknownMod = errors.New("unknown mod")

// ErrUnknownCheat is returned when a cheat name matches no definition in
// any mod under the root.
var ErrUnknownCheat = errors.New("unknown cheat")

// ScanArgs identifies the mods root a command operates on.
type ScanArgs struct {
	Root m.Path
}

// ToggleArgs enables or disables a single mod.
type ToggleArgs struct {
	Root    m.Path
	Mod     string
	Enabled bool
}

// ReorderArgs moves a mod to a 1-based rank in the load order.
type ReorderArgs struct {
	Root m.Path
	Mod  string
	Rank int
}

// InstallArgs copies a mod directory into the mods root.
type InstallArgs struct {
	Root   m.Path
	Source m.Path
	// Name overrides the installed directory name; empty means the source
	// basename.
	Name string
}

// RemoveArgs deletes a mod from the root.
type RemoveArgs struct {
	Root m.Path
	Mod  string
}

// CheatListArgs lists the cheats a mod ships.
type CheatListArgs struct {
	Root m.Path
	Mod  string
}

// CheatSetArgs flips the enabled state of named cheats.
type CheatSetArgs struct {
	Root    m.Path
	Names   []string
	Enabled bool
	// Clear drops every existing selection before applying Names.
	Clear bool
}

// Workflow is the use-case surface the CLI drives. Every mutating method
// re-scans and re-resolves afterwards: the overlay resolution is derived
// state, never persisted.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
	Conflicts(ctx context.Context, args ScanArgs) error
	Tree(ctx context.Context, args ScanArgs) error
	Apply(ctx context.Context, args ScanArgs) error
	SetEnabled(ctx context.Context, args ToggleArgs) error
	DisableAll(ctx context.Context, args ScanArgs) error
	Reorder(ctx context.Context, args ReorderArgs) error
	Install(ctx context.Context, args InstallArgs) error
	Remove(ctx context.Context, args RemoveArgs) error
	CheatList(ctx context.Context, args CheatListArgs) error
	CheatSet(ctx context.Context, args CheatSetArgs) error
	CheatPreview(ctx context.Context, args ScanArgs) error
}

type workflow struct {
	adapter.ModFSAdapter
	adapter.ManifestStore
	adapter.CheatStore
	controller.UI
}

// NewWorkflow creates a Workflow wired to the provided adapters and UI.
func NewWorkflow(
	fs adapter.ModFSAdapter,
	manifests adapter.ManifestStore,
	cheats adapter.CheatStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		ModFSAdapter:  fs,
		ManifestStore: manifests,
		CheatStore:    cheats,
		UI:            ui,
	}
}

// load scans the mods root and resolves the overlay of its enabled set.
func (w *workflow) load(ctx context.Context, root m.Path) (m.ScanResult, m.Resolution, error) {
	scan, err := w.ScanMods(ctx, root)
	if err != nil {
		return m.ScanResult{}, m.Resolution{}, fmt.Errorf("scan mods: %w", err)
	}

	res, err := Resolve(scan.OverlaySet())
	if err != nil {
		return m.ScanResult{}, m.Resolution{}, fmt.Errorf("resolve overlay: %w", err)
	}

	return scan, res, nil
}

func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	scan, res, err := w.load(ctx, args.Root)
	if err != nil {
		return err
	}

	return w.DisplayMods(ctx, scan, res)
}

func (w *workflow) Conflicts(ctx context.Context, args ScanArgs) error {
	scan, res, err := w.load(ctx, args.Root)
	if err != nil {
		return err
	}

	return w.DisplayConflicts(ctx, scan, res)
}

func (w *workflow) Tree(ctx context.Context, args ScanArgs) error {
	scan, res, err := w.load(ctx, args.Root)
	if err != nil {
		return err
	}

	return w.DisplayTree(ctx, scan, res)
}

func (w *workflow) Apply(ctx context.Context, args ScanArgs) error {
	scan, err := w.ScanMods(ctx, args.Root)
	if err != nil {
		return fmt.Errorf("scan mods: %w", err)
	}

	return w.applyOrder(ctx, scan)
}

// applyOrder normalizes on-disk names to the given load order, rewrites the
// emulator manifest, then shows the resulting state.
func (w *workflow) applyOrder(ctx context.Context, scan m.ScanResult) error {
	ops := PlanRenames(scan.Mods)

	if len(ops) > 0 {
		if err := w.ApplyRenames(ctx, scan.Root, ops); err != nil {
			return fmt.Errorf("apply renames: %w", err)
		}
	}

	entries, err := manifestEntries(scan)
	if err != nil {
		return err
	}

	if err := w.Write(scan.Root, entries); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	if err := w.normalizeEnabled(scan); err != nil {
		return err
	}

	slog.Info("applied load order",
		"root", scan.Root, "renames", len(ops), "mods", len(scan.Mods))
	w.Status(ctx, "Applied load order: %d renames across %d mods.", len(ops), len(scan.Mods))

	rescan, res, err := w.load(ctx, scan.Root)
	if err != nil {
		return err
	}

	return w.DisplayMods(ctx, rescan, res)
}

// normalizeEnabled rewrites enabled.txt in canonical form, sorted with one
// build id line per selected cheat. A missing or already canonical file is
// left alone.
func (w *workflow) normalizeEnabled(scan m.ScanResult) error {
	before, err := w.ReadEnabled(scan.Root, scan.CheatsFolder)
	if err != nil {
		return fmt.Errorf("read enabled cheats: %w", err)
	}

	if before == "" {
		return nil
	}

	after := RenderEnabledContent(m.CheatSelection(ParseEnabledContent(before)))
	if after == before {
		return nil
	}

	if err := w.WriteEnabled(scan.Root, scan.CheatsFolder, after); err != nil {
		return fmt.Errorf("write enabled cheats: %w", err)
	}

	return nil
}

// manifestEntries mirrors what the rename plan puts on disk, in load order.
func manifestEntries(scan m.ScanResult) ([]m.ManifestEntry, error) {
	absRoot, err := filepath.Abs(string(scan.Root))
	if err != nil {
		return nil, fmt.Errorf("resolve mods root: %w", err)
	}

	entries := make([]m.ManifestEntry, 0, len(scan.Mods))
	rank := 0

	for _, mod := range scan.Mods {
		var name string

		enabled := mod.Enabled && !mod.CheatOnly
		if enabled {
			rank++
			name = EncodeRank(rank, mod.CleanName)
		} else {
			name = EncodeDisabled(mod.CleanName)
		}

		entries = append(entries, m.ManifestEntry{
			Name:    name,
			Path:    filepath.Join(absRoot, name),
			Enabled: enabled,
		})
	}

	return entries, nil
}

func (w *workflow) SetEnabled(ctx context.Context, args ToggleArgs) error {
	scan, err := w.ScanMods(ctx, args.Root)
	if err != nil {
		return fmt.Errorf("scan mods: %w", err)
	}

	found := false

	for i := range scan.Mods {
		if scan.Mods[i].Name == args.Mod || scan.Mods[i].CleanName == args.Mod {
			scan.Mods[i].Enabled = args.Enabled
			found = true

			break
		}
	}

	if !found {
		return fmt.Errorf("%w: %q", ErrUnknownMod, args.Mod)
	}

	return w.applyOrder(ctx, scan)
}

func (w *workflow) DisableAll(ctx context.Context, args ScanArgs) error {
	scan, err := w.ScanMods(ctx, args.Root)
	if err != nil {
		return fmt.Errorf("scan mods: %w", err)
	}

	for i := range scan.Mods {
		scan.Mods[i].Enabled = false
	}

	return w.applyOrder(ctx, scan)
}

func (w *workflow) Reorder(ctx context.Context, args ReorderArgs) error {
	scan, err := w.ScanMods(ctx, args.Root)
	if err != nil {
		return fmt.Errorf("scan mods: %w", err)
	}

	from := -1

	for i := range scan.Mods {
		if scan.Mods[i].Name == args.Mod || scan.Mods[i].CleanName == args.Mod {
			from = i
			break
		}
	}

	if from == -1 {
		return fmt.Errorf("%w: %q", ErrUnknownMod, args.Mod)
	}

	to := args.Rank - 1
	if to < 0 {
		to = 0
	}

	if to >= len(scan.Mods) {
		to = len(scan.Mods) - 1
	}

	mod := scan.Mods[from]
	rest := append(scan.Mods[:from:from], scan.Mods[from+1:]...)
	scan.Mods = append(rest[:to:to], append([]m.Mod{mod}, rest[to:]...)...)

	return w.applyOrder(ctx, scan)
}

func (w *workflow) Install(ctx context.Context, args InstallArgs) error {
	name := args.Name
	if name == "" {
		name = filepath.Base(string(args.Source))
	}

	if err := w.InstallDir(ctx, args.Source, args.Root, name); err != nil {
		return fmt.Errorf("install %q: %w", name, err)
	}

	w.Status(ctx, "Installed %q.", name)

	scan, res, err := w.load(ctx, args.Root)
	if err != nil {
		return err
	}

	return w.DisplayMods(ctx, scan, res)
}

func (w *workflow) Remove(ctx context.Context, args RemoveArgs) error {
	scan, err := w.ScanMods(ctx, args.Root)
	if err != nil {
		return fmt.Errorf("scan mods: %w", err)
	}

	mod, ok := scan.Find(args.Mod)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMod, args.Mod)
	}

	if err := w.RemoveMod(ctx, args.Root, mod.Name); err != nil {
		return fmt.Errorf("remove %q: %w", mod.CleanName, err)
	}

	w.Status(ctx, "Removed %q.", mod.CleanName)

	rescan, res, err := w.load(ctx, args.Root)
	if err != nil {
		return err
	}

	return w.DisplayMods(ctx, rescan, res)
}

// modCheats parses every cheat definition file the mod ships, in stable
// filename order.
func (w *workflow) modCheats(root m.Path, mod m.Mod) ([]m.Cheat, error) {
	definitions, err := w.ReadDefinitions(root, mod.Name)
	if err != nil {
		return nil, fmt.Errorf("read cheat definitions for %q: %w", mod.CleanName, err)
	}

	filenames := make([]string, 0, len(definitions))
	for filename := range definitions {
		filenames = append(filenames, filename)
	}

	sort.Strings(filenames)

	var cheats []m.Cheat

	for _, filename := range filenames {
		for _, cheat := range ParseCheatBlocks(definitions[filename]) {
			cheat.Mod = mod.Name
			cheat.File = m.Path(filename)
			cheats = append(cheats, cheat)
		}
	}

	return cheats, nil
}

func (w *workflow) CheatList(ctx context.Context, args CheatListArgs) error {
	scan, err := w.ScanMods(ctx, args.Root)
	if err != nil {
		return fmt.Errorf("scan mods: %w", err)
	}

	mod, ok := scan.Find(args.Mod)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMod, args.Mod)
	}

	cheats, err := w.modCheats(args.Root, mod)
	if err != nil {
		return err
	}

	enabled, err := w.ReadEnabled(args.Root, scan.CheatsFolder)
	if err != nil {
		return fmt.Errorf("read enabled cheats: %w", err)
	}

	return w.DisplayCheats(ctx, mod.Name, cheats, m.CheatSelection(ParseEnabledContent(enabled)))
}

func (w *workflow) CheatSet(ctx context.Context, args CheatSetArgs) error {
	scan, err := w.ScanMods(ctx, args.Root)
	if err != nil {
		return fmt.Errorf("scan mods: %w", err)
	}

	known := make(map[string]struct{})

	for _, mod := range scan.Mods {
		cheats, err := w.modCheats(args.Root, mod)
		if err != nil {
			return err
		}

		for _, cheat := range cheats {
			known[cheat.Name] = struct{}{}
		}
	}

	before, err := w.ReadEnabled(args.Root, scan.CheatsFolder)
	if err != nil {
		return fmt.Errorf("read enabled cheats: %w", err)
	}

	sel := m.CheatSelection{}
	if !args.Clear {
		sel = m.CheatSelection(ParseEnabledContent(before))
	}

	for _, name := range args.Names {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCheat, name)
		}

		if args.Enabled {
			sel[name] = true
		} else {
			delete(sel, name)
		}
	}

	after := RenderEnabledContent(sel)
	path := w.EnabledPath(args.Root, scan.CheatsFolder)

	if err := w.DisplayEnabledDiff(ctx, path, before, after); err != nil {
		return err
	}

	if err := w.WriteEnabled(args.Root, scan.CheatsFolder, after); err != nil {
		return fmt.Errorf("write enabled cheats: %w", err)
	}

	slog.Info("updated enabled cheats", "path", path, "enabled", len(sel.EnabledNames()))
	w.Status(ctx, "%d cheats enabled.", len(sel.EnabledNames()))

	return nil
}

func (w *workflow) CheatPreview(ctx context.Context, args ScanArgs) error {
	scan, err := w.ScanMods(ctx, args.Root)
	if err != nil {
		return fmt.Errorf("scan mods: %w", err)
	}

	content, err := w.ReadEnabled(args.Root, scan.CheatsFolder)
	if err != nil {
		return fmt.Errorf("read enabled cheats: %w", err)
	}

	path := w.EnabledPath(args.Root, scan.CheatsFolder)

	if content == "" {
		w.Status(ctx, "%s is empty or missing: no cheats are enabled.", path)
		return nil
	}

	w.Status(ctx, "%s:\n%s", path, content)

	return nil
}
