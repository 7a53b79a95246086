// Package domain holds the pure logic of dreamsort: overlay resolution,
// load order and rename policy, and cheat block parsing. Nothing in this
// package touches the filesystem.
package domain

import (
	"errors"
	"fmt"
	"sort"

	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

// ErrDuplicateModIdentifier is returned when the overlay set contains two
// mods with the same identifier. Callers must guarantee uniqueness before
// resolving.
var ErrDuplicateModIdentifier = errors.New("duplicate mod identifier")

// Resolve computes the merged overlay view for the given mods. The input
// must already be filtered to enabled mods and ordered by descending
// priority: index 0 wins every path it contributes.
//
// Resolution is a pure function of its input. For each contributed path the
// first claimant in priority order owns it; later claimants are recorded as
// losers in a ConflictRecord and never disturb the existing claim.
func Resolve(mods []m.Mod) (m.Resolution, error) {
	seen := make(map[string]struct{}, len(mods))
	for _, mod := range mods {
		if _, dup := seen[mod.Name]; dup {
			return m.Resolution{}, fmt.Errorf("%w: %q", ErrDuplicateModIdentifier, mod.Name)
		}

		seen[mod.Name] = struct{}{}
	}

	claims := make(map[m.RelPath]string)
	records := make(map[m.RelPath]*m.ConflictRecord)

	for _, mod := range mods {
		for _, path := range mod.Paths() {
			owner, claimed := claims[path]
			if !claimed {
				claims[path] = mod.Name
				continue
			}

			rec, ok := records[path]
			if !ok {
				rec = &m.ConflictRecord{Path: path, Winner: owner}
				records[path] = rec
			}

			rec.Losers = append(rec.Losers, mod.Name)
		}
	}

	conflicts := make([]m.ConflictRecord, 0, len(records))
	for _, rec := range records {
		conflicts = append(conflicts, *rec)
	}

	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Path < conflicts[j].Path
	})

	return m.Resolution{
		Claims:    claims,
		Conflicts: conflicts,
		Labels:    classify(mods, conflicts),
	}, nil
}

// classify assigns the label set per mod: override for conflict winners,
// conflict for losers, clean for mods untouched by any record. Override and
// conflict can coexist on one mod for different paths.
func classify(mods []m.Mod, conflicts []m.ConflictRecord) map[string][]m.ModLabel {
	winners := make(map[string]bool)
	losers := make(map[string]bool)

	for _, rec := range conflicts {
		winners[rec.Winner] = true

		for _, loser := range rec.Losers {
			losers[loser] = true
		}
	}

	labels := make(map[string][]m.ModLabel, len(mods))

	for _, mod := range mods {
		var set []m.ModLabel

		if winners[mod.Name] {
			set = append(set, m.LabelOverride)
		}

		if losers[mod.Name] {
			set = append(set, m.LabelConflict)
		}

		if len(set) == 0 {
			set = append(set, m.LabelClean)
		}

		labels[mod.Name] = set
	}

	return labels
}
