package ui

import (
	"fmt"
	"strings"

	"accelbench/internal/algorithms"
	"accelbench/internal/demo"
)

// RenderBanner is printed once when the interactive loop starts.
func RenderBanner(acceleratedAvailable bool) string {
	var b strings.Builder
	b.WriteString(Header("Reference vs Accelerated Performance Demo"))
	b.WriteString("\n")
	if !acceleratedAvailable {
		b.WriteString("\n")
		b.WriteString(Warning("WARNING: accelerated implementation not available."))
		b.WriteString("\n")
		b.WriteString(Muted(fmt.Sprintf("Build without -tags noaccel and unset %s to enable it.", algorithms.DisableAcceleratedEnv)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderNumericMenu lists the numbered demo choices.
func RenderNumericMenu(choices []demo.Choice) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(Section("Available demos:"))
	b.WriteString("\n")
	for _, c := range choices {
		fmt.Fprintf(&b, "%s %s\n", menuKeyStyle.Render(c.Key+"."), c.Label)
	}
	return b.String()
}
