// Package seed fills an empty catalog store with a fixed sample catalog.
//
// The store counts as seeded as soon as it holds one category; there is no
// version marker. Two processes seeding the same empty store at once can both
// pass that check, in which case the unique title indexes make one of the two
// commits fail with models.ErrUniqueViolation and leave the other's data in
// place.
package seed

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mytheresa/go-catalog-seed/models"
)

const categorySeparator = " - "

// Result describes what a Run did.
type Result struct {
	Categories int
	Products   int

	// Skipped is set when the store already held categories.
	Skipped bool
}

type Seeder struct {
	store   *models.Store
	fixture Fixture

	// beforeInsert runs after the empty-store check and before the insert
	// transaction begins. Nil outside tests.
	beforeInsert func(ctx context.Context) error
}

// New copies fixture, so later changes by the caller do not reach the store.
func New(store *models.Store, fixture Fixture) *Seeder {
	return &Seeder{
		store:   store,
		fixture: fixture.Clone(),
	}
}

// Run seeds the store with DefaultFixture.
func Run(ctx context.Context, store *models.Store) error {
	_, err := New(store, DefaultFixture()).Run(ctx)
	return err
}

// Run applies the schema and, if the store has no categories, inserts the
// whole fixture in a single transaction. Errors are returned as produced by
// the store; a failed commit leaves the store without any categories.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	log := zerolog.Ctx(ctx)
	var result Result

	err := s.store.Connection(ctx, func(conn *models.Store) error {
		if err := conn.Migrate(ctx); err != nil {
			return err
		}

		seeded, err := conn.Categories(ctx).Any()
		if err != nil {
			return err
		}
		if seeded {
			log.Debug().Msg("catalog already seeded")
			result.Skipped = true
			return nil
		}

		if s.beforeInsert != nil {
			if err := s.beforeInsert(ctx); err != nil {
				return err
			}
		}

		categories := s.build()
		log.Debug().
			Int("categories", len(categories)).
			Int("products", s.fixture.ProductCount()).
			Msg("seeding catalog")

		err = conn.Transaction(ctx, func(cats *models.CategoriesRepository, _ *models.ProductsRepository) error {
			return cats.CreateCategories(categories)
		})
		if err != nil {
			return err
		}

		result.Categories = len(categories)
		result.Products = s.fixture.ProductCount()
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

func (s *Seeder) build() []models.Category {
	categories := make([]models.Category, 0, len(s.fixture.Categories))
	for _, c := range s.fixture.Categories {
		category := models.Category{
			Title:    c.Title,
			Products: make([]models.Product, 0, len(c.Products)),
		}
		for _, p := range c.Products {
			product := models.Product{
				Title: StripCategoryPrefix(p.Title),
				Price: p.Price,
				Stock: p.Stock,
			}
			if p.Description != "" {
				description := p.Description
				product.Description = &description
			}
			category.Products = append(category.Products, product)
		}
		categories = append(categories, category)
	}
	return categories
}

// StripCategoryPrefix drops everything up to and including the first " - ",
// so "Electronics - Bluetooth Speaker" becomes "Bluetooth Speaker". Titles
// without the separator are returned as is.
func StripCategoryPrefix(title string) string {
	if _, rest, ok := strings.Cut(title, categorySeparator); ok {
		return rest
	}
	return title
}
