package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/mechcalc/internal/units"
)

const (
	rule      = "───────────────────────────────────────────────────────────────"
	heavyRule = "═══════════════════════════════════════════════════════════════"
)

func printHeader(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintf(out, "     %s\n", strings.ToUpper(title))
	fmt.Fprintln(out, heavyRule)
	fmt.Fprintln(out)
}

// section prints a titled rule and returns a tabwriter for its rows. The
// caller flushes it.
func section(out io.Writer, title string) *tabwriter.Writer {
	fmt.Fprintf(out, "%s:\n", title)
	fmt.Fprintln(out, rule)
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

// q renders a quantity at the configured precision.
func q(v units.Quantity) string {
	return v.Fixed(cfg.Precision)
}

// qIn renders v converted to unit, falling back to v's own unit.
func qIn(v units.Quantity, unit string) string {
	c, err := v.To(units.MustUnit(unit))
	if err != nil {
		return q(v)
	}
	return q(c)
}

func fosMark(fos float64) string {
	switch {
	case fos == 0:
		return "-"
	case fos < 1:
		return fmt.Sprintf("%.2f ⚠ (overloaded)", fos)
	case fos < 1.5:
		return fmt.Sprintf("%.2f ⚠ (marginal)", fos)
	}
	return fmt.Sprintf("%.2f ✓", fos)
}
