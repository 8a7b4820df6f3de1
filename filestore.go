package folio

import (
	"bytes"
	"fmt"
	"os"
)

// FileLedger keeps trade records in a JSONL file, one record per line,
// appended in trade order. A missing file is an empty ledger.
type FileLedger struct {
	path string
}

// NewFileLedger returns a ledger persisted at path.
func NewFileLedger(path string) *FileLedger { return &FileLedger{path: path} }

func (l *FileLedger) Append(r TradeRecord) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening ledger %s: %w", l.path, err)
	}
	defer f.Close()
	return EncodeTradeRecord(f, r)
}

func (l *FileLedger) Since(start Date) ([]TradeRecord, error) {
	f, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", l.path, err)
	}
	defer f.Close()

	records, err := DecodeTradeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", l.path, err)
	}
	var since []TradeRecord
	for _, r := range records {
		if r.Date.Before(start) {
			continue
		}
		since = append(since, r)
	}
	return since, nil
}

// All returns every record in the ledger in insertion order.
func (l *FileLedger) All() ([]TradeRecord, error) {
	return l.Since(Date{})
}

// FileHoldings keeps the holdings book in a JSONL file. Every mutation
// loads the file, applies the change and rewrites the whole file, keeping
// holdings in their first-buy order. The book is small, a full rewrite is
// simpler than in-place edits.
type FileHoldings struct {
	path string
}

// NewFileHoldings returns a holdings book persisted at path.
func NewFileHoldings(path string) *FileHoldings { return &FileHoldings{path: path} }

func (s *FileHoldings) load() ([]Holding, error) {
	content, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening holdings %s: %w", s.path, err)
	}
	holdings, err := DecodeHoldings(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("reading holdings %s: %w", s.path, err)
	}
	return holdings, nil
}

func (s *FileHoldings) save(holdings []Holding) error {
	var buf bytes.Buffer
	if err := EncodeHoldings(&buf, holdings); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing holdings %s: %w", s.path, err)
	}
	return nil
}

func (s *FileHoldings) Get(symbol string) (Holding, bool, error) {
	holdings, err := s.load()
	if err != nil {
		return Holding{}, false, err
	}
	for _, h := range holdings {
		if h.Symbol == symbol {
			return h, true, nil
		}
	}
	return Holding{}, false, nil
}

func (s *FileHoldings) Upsert(h Holding) error {
	holdings, err := s.load()
	if err != nil {
		return err
	}
	for i, existing := range holdings {
		if existing.Symbol == h.Symbol {
			holdings[i] = h
			return s.save(holdings)
		}
	}
	return s.save(append(holdings, h))
}

func (s *FileHoldings) Delete(symbol string) error {
	holdings, err := s.load()
	if err != nil {
		return err
	}
	for i, existing := range holdings {
		if existing.Symbol == symbol {
			return s.save(append(holdings[:i], holdings[i+1:]...))
		}
	}
	return nil
}

func (s *FileHoldings) All() ([]Holding, error) {
	return s.load()
}
