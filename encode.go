package folio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeTradeRecord marshals a single trade record to JSON and writes it to
// the writer, followed by a newline, in JSONL format.
func EncodeTradeRecord(w io.Writer, r TradeRecord) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal trade record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write trade record: %w", err)
	}
	return nil
}

// DecodeTradeRecords reads a JSONL stream of trade records, validating the
// market and action of each line. Line order is preserved.
func DecodeTradeRecords(r io.Reader) ([]TradeRecord, error) {
	var records []TradeRecord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var rec TradeRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("could not decode trade record %q: %w", string(lineBytes), err)
		}
		if _, err := ParseAction(string(rec.Action)); err != nil {
			return nil, fmt.Errorf("invalid trade record %q: %w", string(lineBytes), err)
		}
		if _, err := ParseMarket(string(rec.Market)); err != nil {
			return nil, fmt.Errorf("invalid trade record %q: %w", string(lineBytes), err)
		}
		// the file is hand-editable, so guard what the engine divides by
		if !rec.Quantity.IsPositive() {
			return nil, fmt.Errorf("invalid trade record %q: quantity must be positive", string(lineBytes))
		}
		if rec.Cost.IsNegative() {
			return nil, fmt.Errorf("invalid trade record %q: cost must not be negative", string(lineBytes))
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading trade records: %w", err)
	}
	return records, nil
}

// jholding is a specialized struct for encoding holdings: Money splits into
// an amount and a currency field on the wire.
type jholding struct {
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name,omitempty"`
	Cost     decimal.Decimal `json:"cost"`
	Currency string          `json:"currency"`
	Quantity Quantity        `json:"quantity"`
	Market   Market          `json:"market"`
}

// EncodeHoldings persists holdings to an io.Writer in JSONL format, one
// holding per line, preserving the given order.
func EncodeHoldings(w io.Writer, holdings []Holding) error {
	for _, h := range holdings {
		jh := jholding{
			Symbol:   h.Symbol,
			Name:     h.Name,
			Cost:     h.Cost.Amount(),
			Currency: h.Currency(),
			Quantity: h.Quantity,
			Market:   h.Market,
		}
		data, err := json.Marshal(jh)
		if err != nil {
			return fmt.Errorf("failed to marshal holding %s: %w", h.Symbol, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write holding %s: %w", h.Symbol, err)
		}
	}
	return nil
}

// DecodeHoldings reads a JSONL stream of holdings, preserving line order.
func DecodeHoldings(r io.Reader) ([]Holding, error) {
	var holdings []Holding
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var jh jholding
		if err := json.Unmarshal(lineBytes, &jh); err != nil {
			return nil, fmt.Errorf("could not decode holding %q: %w", string(lineBytes), err)
		}
		if _, err := ParseMarket(string(jh.Market)); err != nil {
			return nil, fmt.Errorf("invalid holding %q: %w", string(lineBytes), err)
		}
		// a holding in the wrong currency would blow up when subtracted
		// from the market's quotes
		if jh.Currency != "" && jh.Currency != jh.Market.Currency() {
			return nil, fmt.Errorf("invalid holding %q: currency %s does not match market %s (%s)",
				string(lineBytes), jh.Currency, jh.Market, jh.Market.Currency())
		}
		holdings = append(holdings, Holding{
			Symbol:   jh.Symbol,
			Name:     jh.Name,
			Cost:     M(jh.Cost, jh.Currency),
			Quantity: jh.Quantity,
			Market:   jh.Market,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading holdings: %w", err)
	}
	return holdings, nil
}
