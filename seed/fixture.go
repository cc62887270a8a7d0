package seed

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Fixture is the catalog the seeder writes into an empty store.
// The seeder only reads it.
type Fixture struct {
	Categories []CategoryFixture
}

type CategoryFixture struct {
	Title    string
	Products []ProductFixture
}

// ProductFixture titles may carry a "<category> - " label; it is stripped
// before the product is stored.
type ProductFixture struct {
	Title       string
	Price       decimal.Decimal
	Stock       int
	Description string
}

// ProductCount is the total number of products across all categories.
func (f Fixture) ProductCount() int {
	n := 0
	for _, c := range f.Categories {
		n += len(c.Products)
	}
	return n
}

// Clone returns a deep copy of f.
func (f Fixture) Clone() Fixture {
	categories := make([]CategoryFixture, len(f.Categories))
	for i, c := range f.Categories {
		categories[i] = CategoryFixture{
			Title:    c.Title,
			Products: append([]ProductFixture(nil), c.Products...),
		}
	}
	return Fixture{Categories: categories}
}

type fixtureFile struct {
	Categories []struct {
		Title    string `yaml:"title"`
		Products []struct {
			Title       string `yaml:"title"`
			Price       string `yaml:"price"`
			Stock       int    `yaml:"stock"`
			Description string `yaml:"description"`
		} `yaml:"products"`
	} `yaml:"categories"`
}

// LoadFixture reads a fixture from a YAML file of the form
//
//	categories:
//	  - title: Books
//	    products:
//	      - title: Clean Code
//	        price: "34.99"
//	        stock: 64
//	        description: A handbook of agile software craftsmanship.
func LoadFixture(path string) (Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(raw)
}

// ParseFixture decodes YAML fixture data. Prices are parsed as exact decimals.
func ParseFixture(raw []byte) (Fixture, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Fixture{}, fmt.Errorf("decode fixture: %w", err)
	}

	fixture := Fixture{Categories: make([]CategoryFixture, 0, len(file.Categories))}
	for _, c := range file.Categories {
		if c.Title == "" {
			return Fixture{}, fmt.Errorf("decode fixture: category without title")
		}
		category := CategoryFixture{Title: c.Title, Products: make([]ProductFixture, 0, len(c.Products))}
		for _, p := range c.Products {
			price, err := decimal.NewFromString(p.Price)
			if err != nil {
				return Fixture{}, fmt.Errorf("decode fixture: price of %q: %w", p.Title, err)
			}
			category.Products = append(category.Products, ProductFixture{
				Title:       p.Title,
				Price:       price,
				Stock:       p.Stock,
				Description: p.Description,
			})
		}
		fixture.Categories = append(fixture.Categories, category)
	}
	return fixture, nil
}
