// Package catalog filters the vendor catalog and loads it from its sources.
package catalog

import (
	"strings"

	"github.com/asaantaqreeb/taqreeb/internal/model"
)

// Criteria holds the active search and filter constraints. The zero value
// matches every vendor. Criteria is comparable and can key a memo map.
type Criteria struct {
	SearchText string
	Category   model.Category // "" or "all" matches every category
	Location   string
	MinPrice   OptFloat
	MaxPrice   OptFloat
	MinRating  OptFloat
	MinGuests  OptInt
	MaxGuests  OptInt
}

// Query is the raw, string-typed form of Criteria as a search box, filter
// sheet or query string supplies it.
type Query struct {
	Text      string `json:"q"`
	Category  string `json:"category"`
	Location  string `json:"location"`
	MinPrice  string `json:"min_price"`
	MaxPrice  string `json:"max_price"`
	MinRating string `json:"min_rating"`
	MinGuests string `json:"min_guests"`
	MaxGuests string `json:"max_guests"`
}

// Criteria converts the query. Malformed numbers become unset bounds.
func (q Query) Criteria() Criteria {
	return Criteria{
		SearchText: strings.TrimSpace(q.Text),
		Category:   model.Category(strings.ToLower(strings.TrimSpace(q.Category))),
		Location:   strings.TrimSpace(q.Location),
		MinPrice:   ParseFloat(q.MinPrice),
		MaxPrice:   ParseFloat(q.MaxPrice),
		MinRating:  ParseFloat(q.MinRating),
		MinGuests:  ParseInt(q.MinGuests),
		MaxGuests:  ParseInt(q.MaxGuests),
	}
}

// Filter returns the vendors matching every active constraint, in catalog
// order. The result is a new slice and is never nil.
func Filter(vendors []model.Vendor, c Criteria) []model.Vendor {
	text := strings.ToLower(c.SearchText)
	loc := strings.ToLower(c.Location)

	out := make([]model.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if match(v, c, text, loc) {
			out = append(out, v)
		}
	}
	return out
}

// Match reports whether a single vendor satisfies the criteria.
func Match(v model.Vendor, c Criteria) bool {
	return match(v, c, strings.ToLower(c.SearchText), strings.ToLower(c.Location))
}

// match takes the search text and location already lowercased.
func match(v model.Vendor, c Criteria, text, loc string) bool {
	if c.Category != "" && c.Category != model.CategoryAll && c.Category != v.Category {
		return false
	}

	if text != "" &&
		!strings.Contains(strings.ToLower(v.Name), text) &&
		!strings.Contains(strings.ToLower(v.Location), text) &&
		!strings.Contains(strings.ToLower(string(v.Category)), text) {
		return false
	}

	if loc != "" && !strings.Contains(strings.ToLower(v.Location), loc) {
		return false
	}

	price := v.EffectivePrice()
	if c.MinPrice.active() && price < c.MinPrice.Value {
		return false
	}
	if c.MaxPrice.active() && price > c.MaxPrice.Value {
		return false
	}

	if c.MinRating.active() && v.Rating < c.MinRating.Value {
		return false
	}

	return capacityOverlaps(v, c)
}

// capacityOverlaps is a range-overlap test between the requested guest range
// and the vendor's capacity. Vendors without capacity data always pass.
func capacityOverlaps(v model.Vendor, c Criteria) bool {
	if !v.HasCapacity() {
		return true
	}
	if c.MinGuests.active() && v.MaxGuests != nil && *v.MaxGuests < c.MinGuests.Value {
		return false
	}
	if c.MaxGuests.active() && v.MinGuests != nil && *v.MinGuests > c.MaxGuests.Value {
		return false
	}
	return true
}

// Listing is a vendor together with the price shown on its card.
type Listing struct {
	model.Vendor
	Price float64 `json:"price"`
}

// Listings attaches the effective price to each vendor.
func Listings(vendors []model.Vendor) []Listing {
	out := make([]Listing, len(vendors))
	for i, v := range vendors {
		out[i] = Listing{Vendor: v, Price: v.EffectivePrice()}
	}
	return out
}
