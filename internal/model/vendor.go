// Package model defines the core marketplace data types.
package model

// Category is the service category a vendor is listed under.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryBanquet  Category = "banquet"
	CategoryCatering Category = "catering"
	CategoryPhoto    Category = "photo"
	CategoryParlor   Category = "parlor"
)

// ValidCategories are the concrete categories a vendor can carry.
var ValidCategories = map[Category]bool{
	CategoryBanquet:  true,
	CategoryCatering: true,
	CategoryPhoto:    true,
	CategoryParlor:   true,
}

// CategoryInfo is a category chip as shown to clients.
type CategoryInfo struct {
	Key   Category `json:"key"`
	Title string   `json:"title"`
}

// Categories lists the category chips in display order, "all" first.
var Categories = []CategoryInfo{
	{Key: CategoryAll, Title: "All"},
	{Key: CategoryBanquet, Title: "Banquets"},
	{Key: CategoryCatering, Title: "Catering"},
	{Key: CategoryPhoto, Title: "Photo Shoot"},
	{Key: CategoryParlor, Title: "Parlor"},
}

// Package is one priced offering of a vendor.
type Package struct {
	ID    string   `json:"id" yaml:"id"`
	Name  string   `json:"name" yaml:"name"`
	Price float64  `json:"price" yaml:"price"`
	Items []string `json:"items,omitempty" yaml:"items,omitempty"`
}

// Vendor represents one listed service provider.
type Vendor struct {
	ID        string    `json:"id" yaml:"id"`
	Category  Category  `json:"category" yaml:"category"`
	Name      string    `json:"name" yaml:"name"`
	Location  string    `json:"location" yaml:"location"`
	Rating    float64   `json:"rating" yaml:"rating"`
	BasePrice float64   `json:"base_price,omitempty" yaml:"base_price,omitempty"`
	MinGuests *int      `json:"min_guests,omitempty" yaml:"min_guests,omitempty"`
	MaxGuests *int      `json:"max_guests,omitempty" yaml:"max_guests,omitempty"`
	Packages  []Package `json:"packages,omitempty" yaml:"packages,omitempty"`
}

// EffectivePrice is the price used for display and filtering: the base
// price for banquets, otherwise the first package's price, otherwise 0.
func (v Vendor) EffectivePrice() float64 {
	if v.Category == CategoryBanquet {
		return v.BasePrice
	}
	if len(v.Packages) > 0 {
		return v.Packages[0].Price
	}
	return 0
}

// HasCapacity reports whether the vendor carries any guest-capacity data.
func (v Vendor) HasCapacity() bool {
	return v.MinGuests != nil || v.MaxGuests != nil
}
