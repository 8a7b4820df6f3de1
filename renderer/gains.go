package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/folio"
)

// WindowMarkdown renders the profit of one or more trailing windows, most
// recent first.
func WindowMarkdown(windows ...folio.WindowPnL) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Gains\n\n")
	fmt.Fprintln(&b, "| Since | Days | P&L | % of Portfolio |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, w := range windows {
		fmt.Fprintf(&b, "| %s | %d | %s | %s |\n",
			w.Since,
			w.Days,
			w.PnL.SignedString(),
			w.Percent.SignedString(),
		)
	}
	return b.String()
}
