package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tracker maintains the holdings book and the trade ledger. Every buy and
// sell mutates the current position using the weighted average cost method
// and appends the trade to the ledger, or leaves both untouched on error.
type Tracker struct {
	holdings HoldingStore
	ledger   LedgerStore
	meta     MetadataProvider
}

// NewTracker returns a Tracker over the given stores. meta may be nil, in
// which case new holdings are named after their symbol and priced in the
// market's default currency.
func NewTracker(holdings HoldingStore, ledger LedgerStore, meta MetadataProvider) *Tracker {
	return &Tracker{holdings: holdings, ledger: ledger, meta: meta}
}

// SellOutcome describes the position after a sell.
type SellOutcome struct {
	// Holding is the remaining position. Zero value when Removed.
	Holding Holding
	// Removed is true when the position was fully closed.
	Removed bool
	// Record is the ledger record appended for the sell.
	Record TradeRecord
}

// Buy opens or increases a position in symbol on market at the given unit
// cost. An existing position keeps its market and currency; the new average
// unit cost is the quantity-weighted blend of the old cost and the trade
// cost, kept at full precision.
func (t *Tracker) Buy(on Date, symbol string, market Market, cost decimal.Decimal, qty Quantity) (Holding, error) {
	if !qty.IsPositive() {
		return Holding{}, &InvalidQuantityError{Quantity: qty}
	}
	if on.IsZero() {
		on = Today()
	}

	h, exists, err := t.holdings.Get(symbol)
	if err != nil {
		return Holding{}, fmt.Errorf("reading holding %s: %w", symbol, err)
	}
	if !exists {
		name, currency := symbol, market.Currency()
		if t.meta != nil {
			md, err := t.meta.Metadata(symbol, market)
			if err != nil {
				return Holding{}, fmt.Errorf("resolving %s on %s: %w", symbol, market, err)
			}
			if md.Name != "" {
				name = md.Name
			}
			if md.Currency != "" {
				currency = md.Currency
			}
		}
		h = Holding{
			Symbol:   symbol,
			Name:     name,
			Cost:     M(cost, currency),
			Quantity: qty,
			Market:   market,
		}
	} else {
		// blended = (oldCost*oldQty + cost*qty) / (oldQty + qty)
		total := h.Quantity.Add(qty)
		blended := h.Cost.Amount().Mul(h.Quantity.Amount()).
			Add(cost.Mul(qty.Amount())).
			Div(total.Amount())
		h.Cost = M(blended, h.Currency())
		h.Quantity = total
	}

	if err := t.commit(h, exists, TradeRecord{
		Date:     on,
		Action:   ActionBuy,
		Symbol:   h.Symbol,
		Name:     h.Name,
		Market:   h.Market,
		Currency: h.Currency(),
		Cost:     cost,
		Quantity: qty,
	}); err != nil {
		return Holding{}, err
	}
	return h, nil
}

// Sell reduces or closes the position in symbol at the given unit cost.
// Selling more than is held fails with InsufficientLotsError and changes
// nothing. Selling the exact quantity held removes the position. A partial
// sell recomputes the remaining average cost so that the position's total
// cost drops by the sale's unit cost times quantity sold.
func (t *Tracker) Sell(on Date, symbol string, cost decimal.Decimal, qty Quantity) (SellOutcome, error) {
	if !qty.IsPositive() {
		return SellOutcome{}, &InvalidQuantityError{Quantity: qty}
	}
	if on.IsZero() {
		on = Today()
	}

	h, exists, err := t.holdings.Get(symbol)
	if err != nil {
		return SellOutcome{}, fmt.Errorf("reading holding %s: %w", symbol, err)
	}
	if !exists {
		return SellOutcome{}, &UnknownSymbolError{Symbol: symbol}
	}

	remaining := h.Quantity.Sub(qty)
	if remaining.IsNegative() {
		return SellOutcome{}, &InsufficientLotsError{Symbol: symbol, Requested: qty, Held: h.Quantity}
	}

	record := TradeRecord{
		Date:     on,
		Action:   ActionSell,
		Symbol:   h.Symbol,
		Name:     h.Name,
		Market:   h.Market,
		Currency: h.Currency(),
		Cost:     cost,
		Quantity: qty,
	}

	if remaining.IsZero() {
		prior := h
		if err := t.holdings.Delete(symbol); err != nil {
			return SellOutcome{}, fmt.Errorf("removing holding %s: %w", symbol, err)
		}
		if err := t.ledger.Append(record); err != nil {
			if rerr := t.holdings.Upsert(prior); rerr != nil {
				return SellOutcome{}, fmt.Errorf("recording sell of %s: %v (restoring holding: %w)", symbol, err, rerr)
			}
			return SellOutcome{}, fmt.Errorf("recording sell of %s: %w", symbol, err)
		}
		return SellOutcome{Removed: true, Record: record}, nil
	}

	// remaining cost = (oldCost*oldQty - cost*qty) / remaining
	adjusted := h.Cost.Amount().Mul(h.Quantity.Amount()).
		Sub(cost.Mul(qty.Amount())).
		Div(remaining.Amount())
	h.Cost = M(adjusted, h.Currency())
	h.Quantity = remaining

	if err := t.commit(h, true, record); err != nil {
		return SellOutcome{}, err
	}
	return SellOutcome{Holding: h, Record: record}, nil
}

// commit writes the mutated holding then appends the ledger record, rolling
// the holding back when the append fails so a trade is never half recorded.
func (t *Tracker) commit(h Holding, existed bool, record TradeRecord) error {
	var prior Holding
	if existed {
		p, _, err := t.holdings.Get(h.Symbol)
		if err != nil {
			return fmt.Errorf("reading holding %s: %w", h.Symbol, err)
		}
		prior = p
	}
	if err := t.holdings.Upsert(h); err != nil {
		return fmt.Errorf("writing holding %s: %w", h.Symbol, err)
	}
	if err := t.ledger.Append(record); err != nil {
		var rerr error
		if existed {
			rerr = t.holdings.Upsert(prior)
		} else {
			rerr = t.holdings.Delete(h.Symbol)
		}
		if rerr != nil {
			return fmt.Errorf("recording trade on %s: %v (restoring holding: %w)", h.Symbol, err, rerr)
		}
		return fmt.Errorf("recording trade on %s: %w", h.Symbol, err)
	}
	return nil
}
