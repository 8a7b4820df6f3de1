// Package folio tracks a multi-market stock portfolio with weighted
// average cost accounting.
//
// Positions live in a holdings book keyed by symbol; every buy and sell
// also appends one immutable TradeRecord to a ledger. The Valuator prices
// the current book market by market and the Reconstructor replays the
// ledger to measure profit over an arbitrary trailing window, without any
// stored snapshots.
//
// Four markets are modeled, each trading in a fixed currency: American
// stocks, Istanbul stocks, crypto currencies and commodity futures.
// Cross-currency sums are normalized into the home currency by a
// Converter.
package folio
