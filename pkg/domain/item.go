package domain

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ItemKey is the normalized identifier of a catalog item.
// It is lowercase, trimmed, with internal whitespace collapsed to single spaces.
// Hyphens are kept as-is.
type ItemKey string

// NewItemKey normalizes raw operator input into an ItemKey.
func NewItemKey(raw string) (ItemKey, error) {
	key := ItemKey(strings.ToLower(strings.Join(strings.Fields(raw), " ")))
	if key == "" {
		return "", ErrInvalidItemKey
	}
	return key, nil
}

// MustItemKey is like NewItemKey but panics on empty input.
// Intended for constants and tests.
func MustItemKey(raw string) ItemKey {
	key, err := NewItemKey(raw)
	if err != nil {
		panic(err)
	}
	return key
}

func (k ItemKey) String() string { return string(k) }

// DisplayName returns the customer facing name of the item.
// Each whitespace separated word is capitalized; hyphenated words have every
// segment capitalized with the hyphens preserved ("coca-cola" -> "Coca-Cola").
func (k ItemKey) DisplayName() string {
	words := strings.Fields(string(k))
	for i, w := range words {
		segments := strings.Split(w, "-")
		for j, s := range segments {
			segments[j] = capitalize(s)
		}
		words[i] = strings.Join(segments, "-")
	}
	return strings.Join(words, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Item is a single inventory record.
type Item struct {
	Quantity int             `json:"quantity" yaml:"quantity"`
	Price    decimal.Decimal `json:"price" yaml:"price"`
}

// InStock reports whether the item is visible to customers.
func (i Item) InStock() bool {
	return i.Quantity > 0
}

// CatalogEntry pairs a key with its item, keeping catalog order explicit.
type CatalogEntry struct {
	Key  ItemKey `json:"key" yaml:"key"`
	Item Item    `json:"item" yaml:"item"`
}
