package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/folio"
)

// TradesMarkdown renders ledger records as a markdown table, in ledger
// order.
func TradesMarkdown(records []folio.TradeRecord) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Trades\n\n")
	if len(records) == 0 {
		fmt.Fprint(&b, "No trades.\n")
		return b.String()
	}
	fmt.Fprintln(&b, "| Date | Action | Symbol | Market | Quantity | Unit Cost |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|")
	for _, r := range records {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			r.Date,
			r.Action,
			r.Symbol,
			r.Market,
			r.Quantity,
			r.UnitCost(),
		)
	}
	return b.String()
}
