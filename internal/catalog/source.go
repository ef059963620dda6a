package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/asaantaqreeb/taqreeb/internal/model"
)

// ErrUnknownCategory is returned when a catalog file lists a vendor under a
// category that does not exist.
var ErrUnknownCategory = errors.New("unknown vendor category")

// Source supplies the vendor catalog.
type Source interface {
	Vendors(ctx context.Context) ([]model.Vendor, error)
}

// Static is a fixed in-memory catalog.
type Static []model.Vendor

func (s Static) Vendors(_ context.Context) ([]model.Vendor, error) {
	out := make([]model.Vendor, len(s))
	copy(out, s)
	return out, nil
}

func guests(n int) *int { return &n }

// Seed returns the built-in demo catalog.
func Seed() Static {
	return Static{
		{
			ID:        "1",
			Category:  model.CategoryBanquet,
			Name:      "Grand Taj Banquet",
			Location:  "Millium Road, Shahrah Faisal",
			Rating:    4.5,
			BasePrice: 250000,
			MinGuests: guests(200),
			MaxGuests: guests(500),
		},
		{
			ID:       "2",
			Category: model.CategoryCatering,
			Name:     "Karachi Foods",
			Location: "Garden West",
			Rating:   4.8,
			Packages: []model.Package{
				{ID: "2-1", Name: "Standard Menu", Price: 120000, Items: []string{"Chicken Biryani", "Qorma", "Naan", "Kheer"}},
				{ID: "2-2", Name: "Premium Menu", Price: 180000, Items: []string{"Mutton Biryani", "Chicken Karahi", "BBQ Platter", "Gajar Halwa"}},
			},
		},
		{
			ID:       "3",
			Category: model.CategoryPhoto,
			Name:     "Pixel Perfect Studio",
			Location: "DHA, Phase 6",
			Rating:   4.0,
			Packages: []model.Package{
				{ID: "3-1", Name: "Basic Coverage", Price: 50000, Items: []string{"4 hours", "150 edited photos"}},
				{ID: "3-2", Name: "Full Day + Video", Price: 95000, Items: []string{"Full day", "Highlights film", "Album"}},
			},
		},
		{
			ID:       "4",
			Category: model.CategoryParlor,
			Name:     "Glamour Salon",
			Location: "Gulshan Iqbal",
			Rating:   4.4,
			Packages: []model.Package{
				{ID: "4-1", Name: "Party Makeup", Price: 25000, Items: []string{"Makeup", "Hair styling"}},
				{ID: "4-2", Name: "Bridal Package", Price: 65000, Items: []string{"Bridal makeup", "Mehndi", "Dupatta setting"}},
			},
		},
		{
			ID:        "5",
			Category:  model.CategoryBanquet,
			Name:      "Royal Banquet Hall",
			Location:  "Clifton Block 5",
			Rating:    4.7,
			BasePrice: 400000,
			MinGuests: guests(300),
			MaxGuests: guests(1000),
		},
	}
}

// FileSource reads the catalog from a YAML file. JSON files work too since
// yaml.v3 accepts JSON input.
type FileSource struct {
	Path string
}

type catalogFile struct {
	Vendors []model.Vendor `yaml:"vendors"`
}

var packageNamespace = uuid.MustParse("6f3b4d0e-2a9c-4b7e-9a51-7c1d2e8f0a63")

func (f FileSource) Vendors(_ context.Context) ([]model.Vendor, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a catalog document and fills in missing ids.
func ParseCatalog(data []byte) ([]model.Vendor, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	vendors := doc.Vendors
	if vendors == nil {
		vendors = []model.Vendor{}
	}
	for i := range vendors {
		v := &vendors[i]
		if v.Name == "" {
			return nil, fmt.Errorf("vendor %d: name is required", i)
		}
		if !model.ValidCategories[v.Category] {
			return nil, fmt.Errorf("vendor %q: %w: %q", v.Name, ErrUnknownCategory, v.Category)
		}
		if v.ID == "" {
			v.ID = uuid.NewSHA1(packageNamespace, []byte(v.Name)).String()
		}
		for j := range v.Packages {
			p := &v.Packages[j]
			if p.ID == "" {
				p.ID = uuid.NewSHA1(packageNamespace, []byte(v.ID+"/"+p.Name)).String()
			}
		}
	}
	return vendors, nil
}
