package domain

import (
	"regexp"
	"strings"

	m "dreamsort.dev/pkg/dreamsort/internal/model"
)

// CheatBuildIDPrefix is the build-id tag the emulator expects on every line
// of enabled.txt.
const CheatBuildIDPrefix = "FB08F1D20FD1204F-"

var (
	cheatHeader  = regexp.MustCompile(`\[[^\]\n]*\]`)
	enabledEntry = regexp.MustCompile(`<(.*?) Cheat>`)
)

// ParseCheatBlocks extracts named cheat blocks from a cheat definition
// file. A block is a bracketed [Name] header followed by its code, running
// until the next header or end of input. Blocks with an empty name or empty
// code are dropped.
func ParseCheatBlocks(content string) []m.Cheat {
	headers := cheatHeader.FindAllStringIndex(content, -1)

	var cheats []m.Cheat

	for i, loc := range headers {
		name := strings.TrimSpace(content[loc[0]+1 : loc[1]-1])

		end := len(content)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}

		code := strings.TrimSpace(content[loc[1]:end])
		if name == "" || code == "" {
			continue
		}

		cheats = append(cheats, m.Cheat{Name: name, Code: code})
	}

	return cheats
}

// ParseEnabledContent reads the cheat names recorded in an enabled.txt
// body. Lines that do not carry a "<Name Cheat>" entry are ignored.
func ParseEnabledContent(content string) map[string]bool {
	enabled := make(map[string]bool)

	for _, match := range enabledEntry.FindAllStringSubmatch(content, -1) {
		name := strings.TrimSpace(match[1])
		if name != "" {
			enabled[name] = true
		}
	}

	return enabled
}

// RenderEnabledContent produces the enabled.txt body for a selection. Names
// are sorted and deduplicated; an empty selection yields an empty file.
func RenderEnabledContent(sel m.CheatSelection) string {
	var b strings.Builder

	for _, name := range sel.EnabledNames() {
		b.WriteString(CheatBuildIDPrefix)
		b.WriteString("<")
		b.WriteString(name)
		b.WriteString(" Cheat>\n")
	}

	return b.String()
}
