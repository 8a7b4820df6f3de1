package folio

import "fmt"

// InvalidQuantityError reports a non-positive trade quantity supplied to a
// buy or sell.
type InvalidQuantityError struct {
	Quantity Quantity
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("trade quantity must be positive, got %s", e.Quantity)
}

// InsufficientLotsError reports a sell larger than the position. The holding
// is left untouched.
type InsufficientLotsError struct {
	Symbol    string
	Requested Quantity
	Held      Quantity
}

func (e *InsufficientLotsError) Error() string {
	return fmt.Sprintf("cannot sell %s of %s, only %s held", e.Requested, e.Symbol, e.Held)
}

// UnknownSymbolError reports an operation on a symbol with no holding.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("no holding for symbol %q", e.Symbol)
}

// ZeroCostBasisError reports a percentage computation against a zero-cost
// holding, which would otherwise produce an infinite result.
type ZeroCostBasisError struct {
	Symbol string
}

func (e *ZeroCostBasisError) Error() string {
	return fmt.Sprintf("holding %q has a zero cost basis, profit percentage is undefined", e.Symbol)
}

// PriceUnavailableError reports a failed price lookup. It is surfaced
// verbatim from the quote collaborator and never retried by the engine.
type PriceUnavailableError struct {
	Symbol string
	Market Market
	On     Date // zero for a current-price lookup
	Err    error
}

func (e *PriceUnavailableError) Error() string {
	if e.On.IsZero() {
		return fmt.Sprintf("no price for %s on %s: %v", e.Symbol, e.Market, e.Err)
	}
	return fmt.Sprintf("no price for %s on %s as of %s: %v", e.Symbol, e.Market, e.On, e.Err)
}

func (e *PriceUnavailableError) Unwrap() error { return e.Err }
