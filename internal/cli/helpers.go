package cli

import (
	"github.com/fatih/color"
)

// truncate shortens s to maxLen runes, marking the cut with "..."
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func successMark() string {
	return color.GreenString("✓")
}

func warnText(s string) string {
	return color.YellowString(s)
}

// ErrorPrefix returns the coloured prefix used when reporting a failed command
func ErrorPrefix() string {
	return color.RedString("Error:")
}
