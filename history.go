package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WindowPnL is the profit or loss realized and accrued over a trailing
// window, normalized into the home currency.
type WindowPnL struct {
	Since   Date
	Days    int
	PnL     Money
	Percent Percent
}

// Reconstructor derives window profit figures from the trade ledger alone,
// without any stored historical snapshots. It replays the ledger since a
// start date, nets buys against sells per symbol and prices the open
// remainder.
type Reconstructor struct {
	ledger  LedgerStore
	quotes  QuoteProvider
	history HistoricalQuoteProvider
	fx      *Converter
}

// NewReconstructor returns a Reconstructor over the given ledger and price
// sources.
func NewReconstructor(ledger LedgerStore, quotes QuoteProvider, history HistoricalQuoteProvider, fx *Converter) *Reconstructor {
	return &Reconstructor{ledger: ledger, quotes: quotes, history: history, fx: fx}
}

// tradeSide is one side's weighted-average aggregate over a window.
type tradeSide struct {
	cost decimal.Decimal
	qty  decimal.Decimal
}

// add blends one trade into the side's running average cost.
func (s *tradeSide) add(cost, qty decimal.Decimal) {
	total := s.qty.Add(qty)
	s.cost = s.cost.Mul(s.qty).Add(cost.Mul(qty)).Div(total)
	s.qty = total
}

// symbolWindow is the per-symbol digest of the window's trades.
type symbolWindow struct {
	symbol   string
	market   Market
	currency string
	buys     tradeSide
	sells    tradeSide
}

// Since computes the portfolio's profit over the window from start to
// today. The percentage compares the window profit against the portfolio's
// current value, so it is an approximation whenever the window is much
// older than the current positions.
func (r *Reconstructor) Since(start Date, current *PortfolioSnapshot) (WindowPnL, error) {
	records, err := r.ledger.Since(start)
	if err != nil {
		return WindowPnL{}, fmt.Errorf("reading ledger since %s: %w", start, err)
	}

	// first-seen order keeps price lookups deterministic
	var order []string
	windows := make(map[string]*symbolWindow)
	for _, rec := range records {
		w, ok := windows[rec.Symbol]
		if !ok {
			w = &symbolWindow{symbol: rec.Symbol, market: rec.Market, currency: rec.Currency}
			windows[rec.Symbol] = w
			order = append(order, rec.Symbol)
		}
		switch rec.Action {
		case ActionBuy:
			w.buys.add(rec.Cost, rec.Quantity.Amount())
		case ActionSell:
			w.sells.add(rec.Cost, rec.Quantity.Amount())
		default:
			return WindowPnL{}, fmt.Errorf("ledger record for %s has unknown action %q", rec.Symbol, rec.Action)
		}
	}

	var pnl decimal.Decimal
	for _, symbol := range order {
		w := windows[symbol]
		contribution, err := r.contribution(w, start)
		if err != nil {
			return WindowPnL{}, err
		}
		pnl = pnl.Add(contribution)
	}

	result := WindowPnL{
		Since: start,
		Days:  Today().Sub(start),
		PnL:   M(pnl, r.fx.Home()).Round(),
	}
	if current != nil && current.Value.Amount().IsPositive() {
		result.Percent = percentOf(pnl, current.Value.Amount())
	}
	return result, nil
}

// contribution computes one symbol's home-currency share of the window
// profit: the open remainder priced against the market, plus the realized
// profit on the quantity both bought and sold inside the window.
func (r *Reconstructor) contribution(w *symbolWindow, start Date) (decimal.Decimal, error) {
	net := w.buys.qty.Sub(w.sells.qty)

	var open decimal.Decimal
	if net.IsNegative() {
		// more sold than bought: the excess came from a position opened
		// before the window, so it is measured against the price at start
		past, err := r.history.PriceOn(w.symbol, w.market, start)
		if err != nil {
			return decimal.Decimal{}, err
		}
		pastH, err := r.fx.Convert(past)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("reconstructing %s: %w", w.symbol, err)
		}
		sellH, err := r.fx.Convert(M(w.sells.cost, w.currency))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("reconstructing %s: %w", w.symbol, err)
		}
		open = sellH.Amount().Sub(pastH.Amount()).Mul(net.Abs())
	} else {
		cur, err := r.quotes.Price(w.symbol, w.market)
		if err != nil {
			return decimal.Decimal{}, err
		}
		curH, err := r.fx.Convert(cur)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("reconstructing %s: %w", w.symbol, err)
		}
		buyH, err := r.fx.Convert(M(w.buys.cost, w.currency))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("reconstructing %s: %w", w.symbol, err)
		}
		open = curH.Amount().Sub(buyH.Amount()).Mul(net)
	}

	matched := w.buys.qty
	if w.sells.qty.LessThan(matched) {
		matched = w.sells.qty
	}
	if matched.IsZero() {
		return open, nil
	}
	roundTrip, err := r.fx.Convert(M(w.buys.cost.Sub(w.sells.cost).Mul(matched), w.currency))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("reconstructing %s: %w", w.symbol, err)
	}
	return open.Add(roundTrip.Amount()), nil
}
