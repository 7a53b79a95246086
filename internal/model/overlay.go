package model

// FileClaim resolves a relative path to its owning mod for an overlay set.
type FileClaim struct {
	Path  RelPath
	Owner string
}

// ConflictRecord captures a path claimed by more than one enabled mod: the
// winner keeps the claim, every other claimant is a loser.
type ConflictRecord struct {
	Path   RelPath
	Winner string
	Losers []string
}

// ModLabel classifies a mod relative to the current overlay set.
type ModLabel string

const (
	// LabelOverride marks a mod that wins at least one path also contributed
	// by a lower-priority mod.
	LabelOverride ModLabel = "override"
	// LabelConflict marks a mod that loses at least one path to a
	// higher-priority mod.
	LabelConflict ModLabel = "conflict"
	// LabelClean marks a mod whose paths are all uniquely its own.
	LabelClean ModLabel = "clean"
)

// Resolution is the merged view of an overlay set: the path to winning mod
// mapping an emulator would read, plus the full conflict list and per-mod
// classification. It is derived state, recomputed on every mutating event.
type Resolution struct {
	Claims    map[RelPath]string
	Conflicts []ConflictRecord
	// Labels holds the set of applicable labels per mod name. A mod may be
	// both override and conflict at once, for different paths.
	Labels map[string][]ModLabel
}

// HasLabel reports whether the resolution assigned the given label to the mod.
func (r Resolution) HasLabel(mod string, label ModLabel) bool {
	for _, l := range r.Labels[mod] {
		if l == label {
			return true
		}
	}

	return false
}

// ConflictFor returns the conflict record for a path, if any.
func (r Resolution) ConflictFor(path RelPath) (ConflictRecord, bool) {
	for _, rec := range r.Conflicts {
		if rec.Path == path {
			return rec, true
		}
	}

	return ConflictRecord{}, false
}

// FileStatus describes how a single mod file fares in a resolved overlay.
type FileStatus struct {
	Loaded bool
	// Overrides lists the losing mods when this mod wins the path.
	Overrides []string
	// OverriddenBy names the winner when this mod loses the path.
	OverriddenBy string
}

// StatusOf reports the per-file status for one of mod's paths. Paths the
// resolver never saw (disabled mods) report as not loaded.
func (r Resolution) StatusOf(mod string, path RelPath) FileStatus {
	owner, claimed := r.Claims[path]
	if !claimed {
		return FileStatus{}
	}

	rec, contested := r.ConflictFor(path)

	switch {
	case owner == mod && contested:
		return FileStatus{Loaded: true, Overrides: rec.Losers}
	case owner == mod:
		return FileStatus{Loaded: true}
	default:
		return FileStatus{OverriddenBy: owner}
	}
}

// RenameOp is a single directory rename inside the mods root.
type RenameOp struct {
	From string
	To   string
}

// TempRenameSuffix marks directories parked during the first phase of an
// apply, so a crashed run is recognizable and recoverable by hand.
const TempRenameSuffix = "__temp_rename__"
