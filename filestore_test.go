package folio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.jsonl")
	ledger := NewFileLedger(path)

	t.Run("missing file is an empty ledger", func(t *testing.T) {
		records, err := ledger.All()
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		if len(records) != 0 {
			t.Errorf("records = %v, want none", records)
		}
	})

	r1 := TradeRecord{Date: NewDate(2025, 3, 10), Action: ActionBuy, Symbol: "A", Market: America, Currency: "USD", Cost: newDecimal(10), Quantity: Q(1)}
	r2 := TradeRecord{Date: NewDate(2025, 4, 1), Action: ActionSell, Symbol: "A", Market: America, Currency: "USD", Cost: newDecimal(12), Quantity: Q(1)}

	t.Run("appends accumulate in order", func(t *testing.T) {
		if err := ledger.Append(r1); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
		if err := ledger.Append(r2); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
		records, err := ledger.All()
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		if len(records) != 2 || !records[0].Equal(r1) || !records[1].Equal(r2) {
			t.Errorf("records = %+v", records)
		}
	})

	t.Run("since filters by date", func(t *testing.T) {
		records, err := ledger.Since(NewDate(2025, 3, 20))
		if err != nil {
			t.Fatalf("Since() error = %v", err)
		}
		if len(records) != 1 || !records[0].Equal(r2) {
			t.Errorf("records = %+v, want only the April sell", records)
		}
	})
}

func TestFileLedger_HandEditedGarbage(t *testing.T) {
	// the file is hand-editable; a zero-quantity line must surface as an
	// error from the read, not blow up later in the window replay
	path := filepath.Join(t.TempDir(), "trades.jsonl")
	line := `{"date":"2025-03-10","action":"sell","symbol":"A","market":"America","currency":"USD","cost":10,"quantity":0}` + "\n"
	if err := os.WriteFile(path, []byte(line), 0644); err != nil {
		t.Fatal(err)
	}

	ledger := NewFileLedger(path)
	if _, err := ledger.Since(NewDate(2025, 1, 1)); err == nil {
		t.Fatal("Since() should reject a zero-quantity record")
	}

	// and the Reconstructor reports that error instead of dividing by it
	r := NewReconstructor(ledger, &fakeQuotes{}, &fakeQuotes{}, lira())
	if _, err := r.Since(NewDate(2025, 1, 1), nil); err == nil {
		t.Fatal("Reconstructor.Since() should fail on a corrupt ledger")
	}
}

func TestFileHoldings_HandEditedGarbage(t *testing.T) {
	// a holding whose currency disagrees with its market must fail the
	// load, not panic the valuation when subtracted from a quote
	path := filepath.Join(t.TempDir(), "holdings.jsonl")
	line := `{"symbol":"AAPL","cost":100,"currency":"EUR","quantity":1,"market":"America"}` + "\n"
	if err := os.WriteFile(path, []byte(line), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewFileHoldings(path)
	if _, err := store.All(); err == nil {
		t.Fatal("All() should reject a currency foreign to the market")
	}

	quotes := &fakeQuotes{prices: map[string]Money{"AAPL": USD(110)}}
	if _, err := NewValuator(store, quotes, lira()).Snapshot(); err == nil {
		t.Fatal("Snapshot() should fail on a corrupt holdings file")
	}
}

func TestFileHoldings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holdings.jsonl")
	store := NewFileHoldings(path)

	thyao := Holding{Symbol: "THYAO", Cost: TRY(300.25), Quantity: Q(30), Market: BIST}
	btc := Holding{Symbol: "BTC", Cost: USD(78123.26), Quantity: Q(0.01), Market: Crypto}

	t.Run("get on a missing file", func(t *testing.T) {
		_, exists, err := store.Get("THYAO")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if exists {
			t.Error("Get() found a holding in an empty store")
		}
	})

	t.Run("upsert and get", func(t *testing.T) {
		if err := store.Upsert(thyao); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
		if err := store.Upsert(btc); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
		h, exists, err := store.Get("THYAO")
		if err != nil || !exists {
			t.Fatalf("Get() = %v, %v", exists, err)
		}
		if !h.Cost.Equal(TRY(300.25)) {
			t.Errorf("Cost = %v, want %v", h.Cost, TRY(300.25))
		}
	})

	t.Run("upsert replaces in place", func(t *testing.T) {
		updated := thyao
		updated.Quantity = Q(20)
		if err := store.Upsert(updated); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
		all, err := store.All()
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		// first-buy order is preserved across updates
		if len(all) != 2 || all[0].Symbol != "THYAO" || all[1].Symbol != "BTC" {
			t.Fatalf("All() = %+v", all)
		}
		if !all[0].Quantity.Equal(Q(20)) {
			t.Errorf("Quantity = %v, want 20", all[0].Quantity)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.Delete("THYAO"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, exists, _ := store.Get("THYAO"); exists {
			t.Error("holding still present after delete")
		}
		// deleting an absent symbol is not an error
		if err := store.Delete("THYAO"); err != nil {
			t.Errorf("Delete() of absent symbol error = %v", err)
		}
		all, _ := store.All()
		if len(all) != 1 || all[0].Symbol != "BTC" {
			t.Errorf("All() = %+v, want only BTC", all)
		}
	})
}
