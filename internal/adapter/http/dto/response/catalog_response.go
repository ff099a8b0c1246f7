package response

import "github.com/bozone403/afterhourshvac-sub001/internal/domain/catalog"

// CatalogEntryResponse intentionally exposes only customer-safe fields;
// supplier unit cost and margin stay server-side.
type CatalogEntryResponse struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Unit        string `json:"unit"`
}

func FromCatalogEntries(entries []catalog.Entry) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, CatalogEntryResponse{
			Description: e.Description,
			Category:    e.Category,
			Unit:        e.Unit,
		})
	}
	return out
}
