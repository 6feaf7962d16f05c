// Package inventory holds the machine's stock.
//
// The Store is owned by a single machine and is not safe for concurrent use;
// the machine serves one operator at a time.
package inventory

import (
	"fmt"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/shopspring/decimal"
)

// Entry is a visible catalog line.
type Entry struct {
	Key      domain.ItemKey
	Display  string
	Price    decimal.Decimal
	Quantity int
}

// RefillResult reports what a refill did.
type RefillResult struct {
	Key      domain.ItemKey
	Added    int
	Quantity int
	Price    decimal.Decimal
	NewItem  bool // entry was created or replaced
}

// Store is an ordered mapping from item key to item.
type Store struct {
	order []domain.ItemKey
	items map[domain.ItemKey]domain.Item
	seed  []domain.CatalogEntry
}

// New creates a store seeded with catalog. Reset restores the same catalog.
func New(catalog []domain.CatalogEntry) *Store {
	s := &Store{seed: cloneCatalog(catalog)}
	s.Reset()
	return s
}

// NewDefault creates a store holding the factory catalog.
func NewDefault() *Store {
	return New(domain.DefaultCatalog())
}

// Reset discards every change and restores the seed catalog.
func (s *Store) Reset() {
	s.order = make([]domain.ItemKey, 0, len(s.seed))
	s.items = make(map[domain.ItemKey]domain.Item, len(s.seed))
	for _, e := range s.seed {
		s.put(e.Key, e.Item)
	}
}

// LookupPrice returns the unit price of key, or zero if the key is unknown.
func (s *Store) LookupPrice(key domain.ItemKey) decimal.Decimal {
	item, ok := s.items[key]
	if !ok {
		return decimal.Zero
	}
	return item.Price
}

// Get returns the item stored under key.
func (s *Store) Get(key domain.ItemKey) (domain.Item, bool) {
	item, ok := s.items[key]
	return item, ok
}

// Quantity returns the stock of key, zero when absent.
func (s *Store) Quantity(key domain.ItemKey) int {
	return s.items[key].Quantity
}

// Available reports whether key exists with stock left.
func (s *Store) Available(key domain.ItemKey) bool {
	return s.items[key].InStock()
}

// VisibleItems lists in-stock items in insertion order.
func (s *Store) VisibleItems() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, key := range s.order {
		item := s.items[key]
		if !item.InStock() {
			continue
		}
		out = append(out, Entry{
			Key:      key,
			Display:  key.DisplayName(),
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	return out
}

// Snapshot returns every entry, including sold-out ones, in insertion order.
func (s *Store) Snapshot() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, domain.CatalogEntry{Key: key, Item: s.items[key]})
	}
	return out
}

// Decrement removes one unit of key.
// The caller must have checked stock and funds; a sold-out or unknown key
// is a programming error and panics.
func (s *Store) Decrement(key domain.ItemKey) {
	item, ok := s.items[key]
	if !ok || item.Quantity <= 0 {
		panic(fmt.Sprintf("inventory: decrement of unavailable item %q", key))
	}
	item.Quantity--
	s.items[key] = item
}

// NeedsPrice reports whether refilling key would create or replace the entry.
func (s *Store) NeedsPrice(key domain.ItemKey) bool {
	return !s.Available(key)
}

// Refill adds stock. An in-stock item keeps its price and price is ignored.
// An unknown or sold-out item is replaced by {add, *price}; price must be set.
func (s *Store) Refill(key domain.ItemKey, add int, price *decimal.Decimal) (RefillResult, error) {
	if add < 0 {
		return RefillResult{}, fmt.Errorf("%w: negative quantity %d", domain.ErrInvalidRefill, add)
	}

	if item, ok := s.items[key]; ok && item.InStock() {
		item.Quantity += add
		s.items[key] = item
		return RefillResult{Key: key, Added: add, Quantity: item.Quantity, Price: item.Price}, nil
	}

	if price == nil {
		return RefillResult{}, fmt.Errorf("%w: %s", domain.ErrPriceRequired, key)
	}
	if !price.IsPositive() {
		return RefillResult{}, fmt.Errorf("%w: non-positive price %s", domain.ErrInvalidRefill, price)
	}

	item := domain.Item{Quantity: add, Price: *price}
	s.put(key, item)
	return RefillResult{Key: key, Added: add, Quantity: add, Price: item.Price, NewItem: true}, nil
}

// put inserts or replaces, keeping the original position of an existing key.
func (s *Store) put(key domain.ItemKey, item domain.Item) {
	if _, exists := s.items[key]; !exists {
		s.order = append(s.order, key)
	}
	s.items[key] = item
}

func cloneCatalog(in []domain.CatalogEntry) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(in))
	copy(out, in)
	return out
}
