package folio

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestTracker() (*Tracker, *MemoryHoldings, *MemoryLedger) {
	holdings := NewMemoryHoldings()
	ledger := NewMemoryLedger()
	quotes := &fakeQuotes{}
	return NewTracker(holdings, ledger, quotes), holdings, ledger
}

func TestTracker_Buy(t *testing.T) {
	on := NewDate(2025, 3, 10)

	t.Run("first buy creates the holding", func(t *testing.T) {
		tracker, _, ledger := newTestTracker()
		h, err := tracker.Buy(on, "THYAO", BIST, newDecimal(300.25), Q(30))
		if err != nil {
			t.Fatalf("Buy() error = %v", err)
		}
		if !h.Cost.Equal(TRY(300.25)) {
			t.Errorf("Cost = %v, want %v", h.Cost, TRY(300.25))
		}
		if !h.Quantity.Equal(Q(30)) {
			t.Errorf("Quantity = %v, want 30", h.Quantity)
		}
		if h.Currency() != "TRY" {
			t.Errorf("Currency = %q, want TRY", h.Currency())
		}
		records, _ := ledger.Since(Date{})
		if len(records) != 1 || records[0].Action != ActionBuy {
			t.Fatalf("ledger = %v, want one buy record", records)
		}
	})

	t.Run("second buy blends the average cost", func(t *testing.T) {
		tracker, _, _ := newTestTracker()
		if _, err := tracker.Buy(on, "AAPL", America, newDecimal(100), Q(10)); err != nil {
			t.Fatalf("Buy() error = %v", err)
		}
		h, err := tracker.Buy(on, "AAPL", America, newDecimal(200), Q(10))
		if err != nil {
			t.Fatalf("Buy() error = %v", err)
		}
		if !h.Cost.Equal(USD(150)) {
			t.Errorf("Cost = %v, want %v", h.Cost, USD(150))
		}
		if !h.Quantity.Equal(Q(20)) {
			t.Errorf("Quantity = %v, want 20", h.Quantity)
		}
	})

	t.Run("buy order does not change the average", func(t *testing.T) {
		trades := []struct {
			cost float64
			qty  float64
		}{{300.25, 30}, {287.10, 12.5}, {312.80, 7}}

		forward, _, _ := newTestTracker()
		backward, _, _ := newTestTracker()
		var last, rlast Holding
		for i := range trades {
			var err error
			last, err = forward.Buy(on, "THYAO", BIST, newDecimal(trades[i].cost), Q(trades[i].qty))
			if err != nil {
				t.Fatalf("Buy() error = %v", err)
			}
			rev := trades[len(trades)-1-i]
			rlast, err = backward.Buy(on, "THYAO", BIST, newDecimal(rev.cost), Q(rev.qty))
			if err != nil {
				t.Fatalf("Buy() error = %v", err)
			}
		}
		// incremental blending divides at every step, so orders may differ by
		// one unit in the last decimal place kept by the division
		eps := decimal.New(1, -12)
		if last.Cost.Amount().Sub(rlast.Cost.Amount()).Abs().GreaterThan(eps) {
			t.Errorf("forward cost %v != backward cost %v", last.Cost, rlast.Cost)
		}

		// and both equal total spent over total bought
		var spent, bought decimal.Decimal
		for _, tr := range trades {
			spent = spent.Add(decimal.NewFromFloat(tr.cost).Mul(decimal.NewFromFloat(tr.qty)))
			bought = bought.Add(decimal.NewFromFloat(tr.qty))
		}
		want := spent.Div(bought)
		if last.Cost.Amount().Sub(want).Abs().GreaterThan(eps) {
			t.Errorf("cost = %v, want %v", last.Cost.Amount(), want)
		}
	})

	t.Run("non positive quantity is rejected", func(t *testing.T) {
		tracker, holdings, ledger := newTestTracker()
		_, err := tracker.Buy(on, "AAPL", America, newDecimal(100), Q(0))
		var invalid *InvalidQuantityError
		if !errors.As(err, &invalid) {
			t.Fatalf("Buy() error = %v, want InvalidQuantityError", err)
		}
		if all, _ := holdings.All(); len(all) != 0 {
			t.Error("holding created on rejected buy")
		}
		if records, _ := ledger.Since(Date{}); len(records) != 0 {
			t.Error("record appended on rejected buy")
		}
	})

	t.Run("metadata names the new holding", func(t *testing.T) {
		tracker, _, _ := newTestTracker()
		h, err := tracker.Buy(on, "BTC", Crypto, newDecimal(78123.26), Q(0.01))
		if err != nil {
			t.Fatalf("Buy() error = %v", err)
		}
		if h.Name != "BTC Inc" {
			t.Errorf("Name = %q, want from metadata", h.Name)
		}
		if h.Currency() != "USD" {
			t.Errorf("Currency = %q, want USD", h.Currency())
		}
	})
}

func TestTracker_Sell(t *testing.T) {
	on := NewDate(2025, 3, 20)

	buy := func(t *testing.T, tracker *Tracker, cost float64, qty float64) {
		t.Helper()
		if _, err := tracker.Buy(on, "THYAO", BIST, newDecimal(cost), Q(qty)); err != nil {
			t.Fatalf("Buy() error = %v", err)
		}
	}

	t.Run("partial sell recomputes the remaining cost", func(t *testing.T) {
		tracker, _, ledger := newTestTracker()
		buy(t, tracker, 300.25, 30)

		outcome, err := tracker.Sell(on, "THYAO", newDecimal(301.25), Q(10))
		if err != nil {
			t.Fatalf("Sell() error = %v", err)
		}
		if outcome.Removed {
			t.Fatal("position closed on partial sell")
		}
		if !outcome.Holding.Quantity.Equal(Q(20)) {
			t.Errorf("Quantity = %v, want 20", outcome.Holding.Quantity)
		}
		// (300.25*30 - 301.25*10) / 20 = 299.75
		if !outcome.Holding.Cost.Equal(TRY(299.75)) {
			t.Errorf("Cost = %v, want %v", outcome.Holding.Cost, TRY(299.75))
		}
		records, _ := ledger.Since(Date{})
		if len(records) != 2 || records[1].Action != ActionSell {
			t.Fatalf("ledger = %v, want buy then sell", records)
		}
	})

	t.Run("selling everything removes the holding", func(t *testing.T) {
		tracker, holdings, _ := newTestTracker()
		buy(t, tracker, 300.25, 30)

		outcome, err := tracker.Sell(on, "THYAO", newDecimal(310), Q(30))
		if err != nil {
			t.Fatalf("Sell() error = %v", err)
		}
		if !outcome.Removed {
			t.Fatal("position should be closed")
		}
		if _, exists, _ := holdings.Get("THYAO"); exists {
			t.Error("holding still present after a full sell")
		}
	})

	t.Run("overselling fails and leaves the holding unchanged", func(t *testing.T) {
		tracker, holdings, ledger := newTestTracker()
		buy(t, tracker, 300.25, 30)

		_, err := tracker.Sell(on, "THYAO", newDecimal(310), Q(31))
		var insufficient *InsufficientLotsError
		if !errors.As(err, &insufficient) {
			t.Fatalf("Sell() error = %v, want InsufficientLotsError", err)
		}
		if !insufficient.Requested.Equal(Q(31)) || !insufficient.Held.Equal(Q(30)) {
			t.Errorf("error carries %v/%v, want 31/30", insufficient.Requested, insufficient.Held)
		}
		h, _, _ := holdings.Get("THYAO")
		if !h.Cost.Equal(TRY(300.25)) || !h.Quantity.Equal(Q(30)) {
			t.Errorf("holding mutated on failed sell: %v", h)
		}
		if records, _ := ledger.Since(Date{}); len(records) != 1 {
			t.Error("record appended on failed sell")
		}
	})

	t.Run("unknown symbol", func(t *testing.T) {
		tracker, _, _ := newTestTracker()
		_, err := tracker.Sell(on, "NOPE", newDecimal(10), Q(1))
		var unknown *UnknownSymbolError
		if !errors.As(err, &unknown) {
			t.Fatalf("Sell() error = %v, want UnknownSymbolError", err)
		}
	})

	t.Run("full round trip leaves no position", func(t *testing.T) {
		tracker, holdings, ledger := newTestTracker()
		buy(t, tracker, 250, 12)
		if _, err := tracker.Sell(on, "THYAO", newDecimal(250), Q(12)); err != nil {
			t.Fatalf("Sell() error = %v", err)
		}
		if all, _ := holdings.All(); len(all) != 0 {
			t.Errorf("holdings = %v, want none", all)
		}
		if records, _ := ledger.Since(Date{}); len(records) != 2 {
			t.Errorf("ledger has %d records, want 2", len(records))
		}
	})
}

func TestTracker_LedgerFailureRollsBack(t *testing.T) {
	on := NewDate(2025, 3, 20)

	t.Run("failed buy leaves no holding", func(t *testing.T) {
		holdings := NewMemoryHoldings()
		tracker := NewTracker(holdings, brokenLedger{}, nil)
		if _, err := tracker.Buy(on, "AAPL", America, newDecimal(100), Q(1)); err == nil {
			t.Fatal("Buy() should fail when the ledger does")
		}
		if _, exists, _ := holdings.Get("AAPL"); exists {
			t.Error("holding persisted without its ledger record")
		}
	})

	t.Run("failed sell restores the holding", func(t *testing.T) {
		holdings := NewMemoryHoldings()
		working := NewTracker(holdings, NewMemoryLedger(), nil)
		if _, err := working.Buy(on, "AAPL", America, newDecimal(100), Q(10)); err != nil {
			t.Fatalf("Buy() error = %v", err)
		}

		broken := NewTracker(holdings, brokenLedger{}, nil)
		if _, err := broken.Sell(on, "AAPL", newDecimal(110), Q(10)); err == nil {
			t.Fatal("Sell() should fail when the ledger does")
		}
		h, exists, _ := holdings.Get("AAPL")
		if !exists || !h.Quantity.Equal(Q(10)) || !h.Cost.Equal(USD(100)) {
			t.Errorf("holding not restored after rollback: %v", h)
		}
	})
}
