package folio

// Metadata describes a listed security as reported by its market.
type Metadata struct {
	Name     string
	Currency string
}

// QuoteProvider returns the latest traded price of a symbol on a market.
type QuoteProvider interface {
	Price(symbol string, market Market) (Money, error)
}

// HistoricalQuoteProvider returns the closing price of a symbol on or
// around a past date.
type HistoricalQuoteProvider interface {
	PriceOn(symbol string, market Market, on Date) (Money, error)
}

// MetadataProvider resolves the display name and trading currency of a
// symbol on a market.
type MetadataProvider interface {
	Metadata(symbol string, market Market) (Metadata, error)
}
