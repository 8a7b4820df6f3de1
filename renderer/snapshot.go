package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/folio"
)

// SnapshotMarkdown renders a full portfolio snapshot to markdown: one table
// per market bucket plus the portfolio totals.
func SnapshotMarkdown(s *folio.PortfolioSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio on %s\n\n", s.On)

	for _, m := range s.Markets {
		fmt.Fprintf(&b, "## %s\n\n", m.Market)
		if len(m.Holdings) == 0 {
			fmt.Fprint(&b, "No holdings.\n\n")
			continue
		}
		fmt.Fprintln(&b, "| Symbol | Name | Quantity | Cost | Last | Total | P&L | P&L % | Port. % |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|---:|")
		for _, h := range m.Holdings {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
				h.Symbol,
				h.Name,
				h.Quantity,
				h.Cost,
				h.LastPrice,
				h.Total,
				h.PnL.SignedString(),
				h.PnLPercent.SignedString(),
				h.PortfolioPercent,
			)
		}
		fmt.Fprintf(&b, "| **%s** | | | | | **%s** | **%s** | | **%s** |\n\n",
			"Total",
			m.Total,
			m.Profit.SignedString(),
			m.PortfolioPercent,
		)
	}

	fmt.Fprint(&b, "## Summary\n\n")
	fmt.Fprintln(&b, "| Value | Profit | Profit % |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s |\n",
		s.Value,
		s.Profit.SignedString(),
		s.ProfitPercent.SignedString(),
	)
	return b.String()
}
