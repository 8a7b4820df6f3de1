package folio

// Holding is one instrument currently owned: its weighted-average unit cost
// and the quantity held. The market and the cost's currency are fixed when
// the position is first acquired and never change afterwards; the quantity
// never goes negative. Holdings are mutated exclusively by [Tracker].
type Holding struct {
	Symbol   string
	Name     string
	Cost     Money // weighted-average unit cost, in the holding's native currency
	Quantity Quantity
	Market   Market
}

// Currency returns the currency the holding is priced in.
func (h Holding) Currency() string { return h.Cost.Currency() }

// HoldingStore is the repository of current holdings. Implementations must
// keep All in a stable insertion order so snapshots are deterministic.
type HoldingStore interface {
	// Get returns the holding for a symbol, and whether one exists.
	Get(symbol string) (Holding, bool, error)
	// Upsert creates or replaces the holding for its symbol.
	Upsert(h Holding) error
	// Delete removes the holding for a symbol. Removing an absent symbol is
	// not an error.
	Delete(symbol string) error
	// All returns every holding in insertion order.
	All() ([]Holding, error)
}
