package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/folio"
)

func TestSnapshotMarkdown(t *testing.T) {
	snap := &folio.PortfolioSnapshot{
		On:            folio.NewDate(2025, 6, 30),
		Value:         folio.M(38110, "TRY"),
		Profit:        folio.M(865.80, "TRY"),
		ProfitPercent: folio.Percent(2.27),
	}
	for _, m := range folio.Markets() {
		snap.Markets = append(snap.Markets, &folio.MarketReport{
			Market: m,
			Total:  folio.M(0, m.Currency()),
			Profit: folio.M(0, m.Currency()),
		})
	}
	snap.Market(folio.BIST).Holdings = []folio.HoldingReport{{
		Symbol:           "THYAO",
		Name:             "Turkish Airlines",
		Cost:             folio.M(299.75, "TRY"),
		Quantity:         folio.Q(20),
		LastPrice:        folio.M(305.50, "TRY"),
		Total:            folio.M(6110, "TRY"),
		PnL:              folio.M(115, "TRY"),
		PnLPercent:       folio.Percent(1.92),
		PortfolioPercent: folio.Percent(16.03),
	}}

	md := SnapshotMarkdown(snap)

	for _, want := range []string{
		"# Portfolio on 2025-06-30",
		"## BIST",
		"| THYAO | Turkish Airlines |",
		"1.92%",
		"## Summary",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	// empty buckets still get a section
	if !strings.Contains(md, "## Crypto") {
		t.Error("markdown missing the empty Crypto section")
	}
	if !strings.Contains(md, "No holdings.") {
		t.Error("markdown missing the empty bucket placeholder")
	}
}

func TestWindowMarkdown(t *testing.T) {
	md := WindowMarkdown(folio.WindowPnL{
		Since:   folio.NewDate(2025, 5, 31),
		Days:    30,
		PnL:     folio.M(4000, "TRY"),
		Percent: folio.Percent(9.09),
	})
	for _, want := range []string{"# Gains", "| 2025-05-31 | 30 |", "+9.09%"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestTradesMarkdown(t *testing.T) {
	t.Run("empty ledger", func(t *testing.T) {
		if md := TradesMarkdown(nil); !strings.Contains(md, "No trades.") {
			t.Errorf("markdown = %q", md)
		}
	})

	t.Run("ordered rows", func(t *testing.T) {
		records := []folio.TradeRecord{
			{Date: folio.NewDate(2025, 3, 10), Action: folio.ActionBuy, Symbol: "THYAO", Market: folio.BIST, Currency: "TRY", Quantity: folio.Q(30)},
			{Date: folio.NewDate(2025, 3, 20), Action: folio.ActionSell, Symbol: "THYAO", Market: folio.BIST, Currency: "TRY", Quantity: folio.Q(10)},
		}
		md := TradesMarkdown(records)
		buyAt := strings.Index(md, "buy")
		sellAt := strings.Index(md, "sell")
		if buyAt < 0 || sellAt < 0 || buyAt > sellAt {
			t.Errorf("trades out of order:\n%s", md)
		}
	})
}
