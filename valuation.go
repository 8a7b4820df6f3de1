package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// HoldingReport is one valued position inside a market bucket. Money fields
// are in the holding's native currency; percentages compare home-normalized
// values.
type HoldingReport struct {
	Symbol           string
	Name             string
	Cost             Money
	Quantity         Quantity
	LastPrice        Money
	Total            Money
	PnL              Money
	PnLPercent       Percent
	PortfolioPercent Percent
}

// MarketReport aggregates the positions of one market in its native
// currency.
type MarketReport struct {
	Market           Market
	Total            Money
	Profit           Money
	PortfolioPercent Percent
	Holdings         []HoldingReport
}

// PortfolioSnapshot is the portfolio valued at one instant. Value and
// Profit are normalized into the home currency; Markets always contains
// every known market in a fixed order, empty buckets included.
type PortfolioSnapshot struct {
	On            Date
	Value         Money
	Profit        Money
	ProfitPercent Percent
	Markets       []*MarketReport
}

// Market returns the snapshot's bucket for m, or nil.
func (s *PortfolioSnapshot) Market(m Market) *MarketReport {
	for _, r := range s.Markets {
		if r.Market == m {
			return r
		}
	}
	return nil
}

// Valuator prices the current holdings and assembles portfolio snapshots.
type Valuator struct {
	holdings HoldingStore
	quotes   QuoteProvider
	fx       *Converter
}

// NewValuator returns a Valuator pricing holdings with quotes and
// normalizing cross-currency sums with fx.
func NewValuator(holdings HoldingStore, quotes QuoteProvider, fx *Converter) *Valuator {
	return &Valuator{holdings: holdings, quotes: quotes, fx: fx}
}

// Snapshot values every holding at its latest price and returns the
// portfolio grouped by market. Per-holding profit is (price - cost) * qty
// rounded to cents; portfolio percentages are computed over home-normalized
// values and reported as zero for an empty portfolio.
func (v *Valuator) Snapshot() (*PortfolioSnapshot, error) {
	all, err := v.holdings.All()
	if err != nil {
		return nil, fmt.Errorf("listing holdings: %w", err)
	}

	snap := &PortfolioSnapshot{On: Today()}
	byMarket := make(map[Market]*MarketReport)
	for _, m := range Markets() {
		r := &MarketReport{
			Market:   m,
			Total:    M(0, m.Currency()),
			Profit:   M(0, m.Currency()),
			Holdings: []HoldingReport{},
		}
		byMarket[m] = r
		snap.Markets = append(snap.Markets, r)
	}

	// home-normalized totals, for portfolio-wide sums and percentages
	var valueH, profitH decimal.Decimal
	homeTotals := make(map[Market]decimal.Decimal)

	for _, h := range all {
		price, err := v.quotes.Price(h.Symbol, h.Market)
		if err != nil {
			return nil, err
		}
		if h.Cost.Amount().IsZero() {
			return nil, &ZeroCostBasisError{Symbol: h.Symbol}
		}

		total := price.Mul(h.Quantity).Round()
		pnl := price.Sub(h.Cost).Mul(h.Quantity).Round()
		pnlPct := percentOf(price.Sub(h.Cost).Amount(), h.Cost.Amount())

		report := HoldingReport{
			Symbol:     h.Symbol,
			Name:       h.Name,
			Cost:       h.Cost,
			Quantity:   h.Quantity,
			LastPrice:  price,
			Total:      total,
			PnL:        pnl,
			PnLPercent: pnlPct,
		}

		bucket := byMarket[h.Market]
		if bucket == nil {
			return nil, fmt.Errorf("holding %s has unknown market %q", h.Symbol, h.Market)
		}
		bucket.Total = bucket.Total.Add(total)
		bucket.Profit = bucket.Profit.Add(pnl)
		bucket.Holdings = append(bucket.Holdings, report)

		totalH, err := v.fx.Convert(total)
		if err != nil {
			return nil, fmt.Errorf("valuing %s: %w", h.Symbol, err)
		}
		pnlH, err := v.fx.Convert(pnl)
		if err != nil {
			return nil, fmt.Errorf("valuing %s: %w", h.Symbol, err)
		}
		valueH = valueH.Add(totalH.Amount())
		profitH = profitH.Add(pnlH.Amount())
		homeTotals[h.Market] = homeTotals[h.Market].Add(totalH.Amount())
	}

	snap.Value = M(valueH, v.fx.Home()).Round()
	snap.Profit = M(profitH, v.fx.Home()).Round()

	if valueH.IsPositive() {
		snap.ProfitPercent = percentOf(profitH, valueH)
		for _, bucket := range snap.Markets {
			bucket.PortfolioPercent = percentOf(homeTotals[bucket.Market], valueH)
			for i, hr := range bucket.Holdings {
				totalH, err := v.fx.Convert(hr.Total)
				if err != nil {
					return nil, fmt.Errorf("valuing %s: %w", hr.Symbol, err)
				}
				bucket.Holdings[i].PortfolioPercent = percentOf(totalH.Amount(), valueH)
			}
		}
	}
	return snap, nil
}
