package app

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/vbaemu/internal/callexpr"
)

// scriptLine is one parsed, non-blank line of a script.
type scriptLine struct {
	number int
	expr   hcl.Expression
	diags  hcl.Diagnostics
}

// parseScript splits src into lines and parses each one as a call expression.
// Blank lines and lines starting with an apostrophe are skipped. Lines that
// fail to parse are kept with their diagnostics so they can be reported in
// order.
func parseScript(src, filename string) ([]scriptLine, *callexpr.Container) {
	container := callexpr.NewContainer()
	var lines []scriptLine

	src = strings.ReplaceAll(src, "\r\n", "\n")
	for i, text := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "'") {
			continue
		}

		number := i + 1
		expr, diags := callexpr.Parse(trimmed, filename, number)
		if diags.HasErrors() {
			lines = append(lines, scriptLine{number: number, diags: diags})
			continue
		}
		container.Add(expr)
		lines = append(lines, scriptLine{number: number, expr: expr})
	}
	return lines, container
}
