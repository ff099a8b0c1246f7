package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bozone403/afterhourshvac-sub001/internal/domain/pricing"
)

var (
	ErrEmptyCatalog = errors.New("empty catalog")
)

// Entry is a single priced material in the supplier catalog.
type Entry struct {
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	UnitCost    float64 `json:"unit_cost"`
}

// Source converts the entry into the shape the pricing engine consumes.
func (e Entry) Source() pricing.ItemSource {
	return pricing.ItemSource{
		Description: e.Description,
		Category:    e.Category,
		Unit:        e.Unit,
		UnitCost:    e.UnitCost,
	}
}

// Catalog is the read-only material catalog. It is loaded once at startup,
// validated against the multiplier table, and injected where needed.
type Catalog struct {
	entries []Entry
}

// New validates the entries and builds a catalog. Every entry must carry a
// non-negative unit cost and a category known to the multiplier table, so a
// lookup can never hit an unpriceable item at request time.
func New(entries []Entry, table pricing.MultiplierTable) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	out := make([]Entry, 0, len(entries))
	for i, e := range entries {
		e.Description = strings.TrimSpace(e.Description)
		if e.Description == "" {
			return nil, fmt.Errorf("entry %d: missing description", i)
		}
		if e.UnitCost < 0 {
			return nil, fmt.Errorf("entry %q: unit cost %v: %w", e.Description, e.UnitCost, pricing.ErrInvalidUnitCost)
		}
		if !table.Has(e.Category) {
			return nil, fmt.Errorf("entry %q: category %q: %w", e.Description, e.Category, pricing.ErrUnknownCategory)
		}
		out = append(out, e)
	}
	return &Catalog{entries: out}, nil
}

// Lookup returns entries matching the category and keyword. An empty
// category matches all categories; an empty keyword matches all entries.
// Keyword matching is a case-insensitive substring match on the description.
func (c *Catalog) Lookup(category, keyword string) []Entry {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	out := make([]Entry, 0)
	for _, e := range c.entries {
		if category != "" && e.Category != category {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(e.Description), keyword) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Find returns the entry with the exact description within a category.
func (c *Catalog) Find(category, description string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Category == category && strings.EqualFold(e.Description, description) {
			return e, true
		}
	}
	return Entry{}, false
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
