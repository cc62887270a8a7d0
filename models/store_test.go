package models

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), Options{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func strPtr(s string) *string { return &s }

func sampleCategories() []Category {
	return []Category{
		{
			Title: "Books",
			Products: []Product{
				{Title: "Clean Code", Price: decimal.RequireFromString("34.99"), Stock: 64, Description: strPtr("A handbook of agile software craftsmanship.")},
				{Title: "Refactoring", Price: decimal.RequireFromString("44.99"), Stock: 33},
			},
		},
		{
			Title: "Grocery",
			Products: []Product{
				{Title: "Whole Grain Pasta 500g", Price: decimal.RequireFromString("2.49"), Stock: 200},
				{Title: "Almond Butter 340g", Price: decimal.RequireFromString("8.99"), Stock: 70},
				{Title: "Protein Bars Pack of 12", Price: decimal.RequireFromString("21.99"), Stock: 60},
			},
		},
		{Title: "Garden & Tools"},
	}
}

func insert(t *testing.T, store *Store, categories []Category) {
	t.Helper()
	err := store.Transaction(context.Background(), func(cats *CategoriesRepository, _ *ProductsRepository) error {
		return cats.CreateCategories(categories)
	})
	require.NoError(t, err)
}

// --- Tests: Open ---

func TestOpen(t *testing.T) {
	testCases := []struct {
		name        string
		opts        Options
		expectedErr error
	}{
		{
			name:        "Unsupported driver",
			opts:        Options{Driver: "oracle", DSN: "whatever"},
			expectedErr: ErrUnsupportedDriver,
		},
		{
			name:        "Unreachable store",
			opts:        Options{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "missing", "dir", "catalog.db")},
			expectedErr: ErrConnectivity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := Open(context.Background(), tc.opts)

			assert.Nil(t, store)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "catalog.db?_foreign_keys=on", withForeignKeys("catalog.db"))
	assert.Equal(t, "catalog.db?cache=shared&_foreign_keys=on", withForeignKeys("catalog.db?cache=shared"))
	assert.Equal(t, "catalog.db?_fk=1", withForeignKeys("catalog.db?_fk=1"))
}

// --- Tests: Migrate ---

func TestMigrate_IsIdempotent(t *testing.T) {
	store := newTestStore(t)
	insert(t, store, sampleCategories())

	// Second and third apply against a populated schema.
	require.NoError(t, store.Migrate(context.Background()))
	require.NoError(t, store.Migrate(context.Background()))

	migrator := store.DB().Migrator()
	assert.True(t, migrator.HasTable(&Category{}))
	assert.True(t, migrator.HasTable(&Product{}))
	assert.True(t, migrator.HasIndex(&Category{}, "Title"))
	assert.True(t, migrator.HasIndex(&Product{}, "Title"))

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Categories)
	assert.Equal(t, int64(5), stats.Products)
}

func TestMigrate_SchemaApplyError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	store, err := Open(context.Background(), Options{Driver: "sqlite", DSN: path})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	readOnly, err := Open(context.Background(), Options{Driver: "sqlite", DSN: "file:" + path + "?mode=ro"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = readOnly.Close() })

	err = readOnly.Migrate(context.Background())

	assert.ErrorIs(t, err, ErrSchemaApply)
	assert.NotErrorIs(t, err, ErrConnectivity)
	assert.False(t, readOnly.DB().Migrator().HasTable(&Category{}))
}

// --- Tests: constraints ---

func TestCreateCategories_UniqueTitles(t *testing.T) {
	testCases := []struct {
		name       string
		categories []Category
	}{
		{
			name: "Duplicate category title",
			categories: []Category{
				{Title: "Books"},
				{Title: "Books"},
			},
		},
		{
			name: "Duplicate product title inside one category",
			categories: []Category{
				{Title: "Books", Products: []Product{
					{Title: "Clean Code", Price: decimal.NewFromInt(1)},
					{Title: "Clean Code", Price: decimal.NewFromInt(2)},
				}},
			},
		},
		{
			name: "Duplicate product title across categories",
			categories: []Category{
				{Title: "Books", Products: []Product{{Title: "Gift Card", Price: decimal.NewFromInt(10)}}},
				{Title: "Grocery", Products: []Product{{Title: "Gift Card", Price: decimal.NewFromInt(10)}}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			store := newTestStore(t)

			// Act
			err := store.Transaction(context.Background(), func(cats *CategoriesRepository, _ *ProductsRepository) error {
				return cats.CreateCategories(tc.categories)
			})

			// Assert
			assert.ErrorIs(t, err, ErrUniqueViolation)

			stats, statsErr := store.Stats(context.Background())
			require.NoError(t, statsErr)
			assert.Zero(t, stats.Categories, "failed batch must not leave categories behind")
			assert.Zero(t, stats.Products, "failed batch must not leave products behind")
		})
	}
}

func TestCreateCategories_SameTitleAcrossEntitiesIsAllowed(t *testing.T) {
	store := newTestStore(t)

	insert(t, store, []Category{
		{Title: "Yoga Mat", Products: []Product{{Title: "Yoga Mat", Price: decimal.RequireFromString("24.99"), Stock: 130}}},
	})

	category, err := store.Categories(context.Background()).GetByTitle("Yoga Mat")
	require.NoError(t, err)
	require.Len(t, category.Products, 1)
	assert.Equal(t, "Yoga Mat", category.Products[0].Title)
}

func TestCreateCategory_WritesBackIDs(t *testing.T) {
	store := newTestStore(t)

	category := &Category{
		Title:    "Automotive",
		Products: []Product{{Title: "Tire Inflator", Price: decimal.RequireFromString("39.99"), Stock: 58}},
	}
	require.NoError(t, store.Categories(context.Background()).CreateCategory(category))

	assert.NotZero(t, category.ID)
	require.Len(t, category.Products, 1)
	assert.NotZero(t, category.Products[0].ID)
	assert.Equal(t, category.ID, category.Products[0].CategoryID)
}

func TestPrice_KeepsDecimalPrecision(t *testing.T) {
	store := newTestStore(t)
	price := decimal.RequireFromString("1234.5678")

	insert(t, store, []Category{
		{Title: "Electronics", Products: []Product{{Title: "Server Rack", Price: price, Stock: 1}}},
	})

	product, err := store.Products(context.Background()).GetByTitle("Server Rack")
	require.NoError(t, err)
	assert.True(t, price.Equal(product.Price), "expected %s, got %s", price, product.Price)
}

// --- Tests: cascade delete ---

func TestDeleteCategory_CascadesToProducts(t *testing.T) {
	store := newTestStore(t)
	categories := sampleCategories()
	insert(t, store, categories)

	grocery := categories[1]
	require.NoError(t, store.Categories(context.Background()).DeleteCategory(grocery.ID))

	products, err := store.Products(context.Background()).GetAllProducts()
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, categories[0].ID, p.CategoryID)
	}

	_, err = store.Categories(context.Background()).GetByTitle("Grocery")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.Categories(context.Background()).DeleteCategory(42)

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

// --- Tests: transactions and connections ---

func TestTransaction_RollsBackOnError(t *testing.T) {
	store := newTestStore(t)
	boom := errors.New("boom")

	err := store.Transaction(context.Background(), func(cats *CategoriesRepository, _ *ProductsRepository) error {
		if err := cats.CreateCategories(sampleCategories()); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	seeded, err := store.Categories(context.Background()).Any()
	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestConnection_ReleasesOnEveryPath(t *testing.T) {
	store := newTestStore(t)
	sqlDB, err := store.DB().DB()
	require.NoError(t, err)

	testCases := []struct {
		name        string
		fn          func(conn *Store) error
		expectedErr error
	}{
		{
			name: "Success",
			fn: func(conn *Store) error {
				_, err := conn.Categories(context.Background()).Count()
				return err
			},
		},
		{
			name: "Constraint failure",
			fn: func(conn *Store) error {
				return conn.Transaction(context.Background(), func(cats *CategoriesRepository, _ *ProductsRepository) error {
					return cats.CreateCategories([]Category{{Title: "Books"}, {Title: "Books"}})
				})
			},
			expectedErr: ErrUniqueViolation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Connection(context.Background(), tc.fn)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Zero(t, sqlDB.Stats().InUse)
		})
	}
}
