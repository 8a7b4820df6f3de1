package folio

// MemoryHoldings is an in-memory holdings book, useful in tests and for
// one-shot computations. Holdings keep their first-buy order.
type MemoryHoldings struct {
	symbols  []string
	holdings map[string]Holding
}

// NewMemoryHoldings returns an empty in-memory holdings book.
func NewMemoryHoldings() *MemoryHoldings {
	return &MemoryHoldings{holdings: make(map[string]Holding)}
}

func (s *MemoryHoldings) Get(symbol string) (Holding, bool, error) {
	h, ok := s.holdings[symbol]
	return h, ok, nil
}

func (s *MemoryHoldings) Upsert(h Holding) error {
	if _, ok := s.holdings[h.Symbol]; !ok {
		s.symbols = append(s.symbols, h.Symbol)
	}
	s.holdings[h.Symbol] = h
	return nil
}

func (s *MemoryHoldings) Delete(symbol string) error {
	if _, ok := s.holdings[symbol]; !ok {
		return nil
	}
	delete(s.holdings, symbol)
	for i, sym := range s.symbols {
		if sym == symbol {
			s.symbols = append(s.symbols[:i], s.symbols[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryHoldings) All() ([]Holding, error) {
	all := make([]Holding, 0, len(s.symbols))
	for _, sym := range s.symbols {
		all = append(all, s.holdings[sym])
	}
	return all, nil
}

// MemoryLedger is an in-memory append-only trade ledger.
type MemoryLedger struct {
	records []TradeRecord
}

// NewMemoryLedger returns an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger { return &MemoryLedger{} }

func (l *MemoryLedger) Append(r TradeRecord) error {
	l.records = append(l.records, r)
	return nil
}

func (l *MemoryLedger) Since(start Date) ([]TradeRecord, error) {
	var since []TradeRecord
	for _, r := range l.records {
		if r.Date.Before(start) {
			continue
		}
		since = append(since, r)
	}
	return since, nil
}
