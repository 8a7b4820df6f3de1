package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Action is the direction of a trade.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
)

// ParseAction parses a trade action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionBuy:
		return ActionBuy, nil
	case ActionSell:
		return ActionSell, nil
	default:
		return "", fmt.Errorf("unknown trade action %q", s)
	}
}

// TradeRecord is one immutable line of the trade ledger. Records are only
// ever appended; the ordered sequence of records for a symbol is the sole
// source of truth for historical reconstruction.
type TradeRecord struct {
	Date     Date            `json:"date"`
	Action   Action          `json:"action"`
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name,omitempty"`
	Market   Market          `json:"market"`
	Currency string          `json:"currency"`
	Cost     decimal.Decimal `json:"cost"` // unit cost of the trade
	Quantity Quantity        `json:"quantity"`
}

// UnitCost returns the record's unit cost as Money in its native currency.
func (r TradeRecord) UnitCost() Money { return M(r.Cost, r.Currency) }

// Equal reports whether two records carry the same trade.
func (r TradeRecord) Equal(o TradeRecord) bool {
	return r.Date == o.Date &&
		r.Action == o.Action &&
		r.Symbol == o.Symbol &&
		r.Name == o.Name &&
		r.Market == o.Market &&
		r.Currency == o.Currency &&
		r.Cost.Equal(o.Cost) &&
		r.Quantity.Equal(o.Quantity)
}

// LedgerStore is the append-only repository of trade records.
type LedgerStore interface {
	// Append adds one record at the end of the ledger.
	Append(r TradeRecord) error
	// Since returns every record with a date on or after start, preserving
	// insertion order within a date.
	Since(start Date) ([]TradeRecord, error)
}
