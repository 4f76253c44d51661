package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/vbaemu/internal/action"
	"github.com/vk/vbaemu/internal/callexpr"
	"github.com/vk/vbaemu/internal/value"
)

// formatLiteral renders v the way it would be written in a call expression.
func formatLiteral(v value.Value) string {
	return string(hclwrite.TokensForValue(value.ToCty(v)).Bytes())
}

// formatFailure prefers the unit's own error over HCL's wrapping of it.
func formatFailure(diags hcl.Diagnostics) string {
	if _, err := callexpr.CallFailure(diags); err != nil {
		return err.Error()
	}
	var first *hcl.Diagnostic
	for _, diag := range diags {
		if diag.Severity == hcl.DiagError {
			first = diag
			break
		}
	}
	if first == nil {
		return diags.Error()
	}
	if first.Detail == "" {
		return first.Summary
	}
	return fmt.Sprintf("%s: %s", first.Summary, first.Detail)
}

// writeReport prints every recorded action, as indented text lines or as a
// JSON array.
func writeReport(w io.Writer, format string, records []action.Record) error {
	if format == "json" {
		if records == nil {
			records = []action.Record{}
		}
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode action report: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	if _, err := fmt.Fprintf(w, "actions: %d\n", len(records)); err != nil {
		return err
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "  [%s] %s (%s)\n", r.Category, r.Value, r.Source); err != nil {
			return err
		}
	}
	return nil
}
