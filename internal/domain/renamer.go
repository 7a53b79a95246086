package domain

import (
	"fmt"

	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

// EncodeRank returns the on-disk name for an enabled mod at the given
// 1-based rank. The numeric prefix keeps the directory's natural sort order
// strictly aligned with priority order: ranks are unique, so the mapping is
// monotonic and collision-free.
func EncodeRank(rank int, cleanName string) string {
	return fmt.Sprintf("%02d_%s", rank, cleanName)
}

// EncodeDisabled returns the on-disk name for a disabled or cheat-only mod.
func EncodeDisabled(cleanName string) string {
	return "~" + cleanName
}

// TempName returns the phase-one parking name for a mod.
func TempName(cleanName string) string {
	return cleanName + m.TempRenameSuffix
}

// PlanRenames computes the rename operations that bring the on-disk names
// in line with the given load order. Enabled overlay mods are numbered
// consecutively from 1 in input order; disabled and cheat-only mods get the
// tilde marker. The plan is idempotent: a mod already carrying its correct
// name produces no operation, so applying a plan twice is a no-op.
func PlanRenames(mods []m.Mod) []m.RenameOp {
	var ops []m.RenameOp

	rank := 0

	for _, mod := range mods {
		var target string

		if mod.Enabled && !mod.CheatOnly {
			rank++
			target = EncodeRank(rank, mod.CleanName)
		} else {
			target = EncodeDisabled(mod.CleanName)
		}

		if target == mod.Name {
			continue
		}

		ops = append(ops, m.RenameOp{From: mod.Name, To: target})
	}

	return ops
}
