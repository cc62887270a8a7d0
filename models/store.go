package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options selects the database a Store connects to.
type Options struct {
	// Driver is one of postgres, pq, sqlite, mysql, sqlserver.
	Driver string
	DSN    string

	// Debug routes GORM's SQL logging to stdout.
	Debug bool
}

// Store is the data access context over the catalog schema.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an existing GORM handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, opts Options) (*Store, error) {
	dialector, err := buildDialector(opts.Driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	level := logger.Silent
	if opts.Debug {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrConnectivity, opts.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: get sql.DB: %w", ErrConnectivity, err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: ping: %w", ErrConnectivity, err)
	}

	return &Store{db: db}, nil
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "pq":
		// lib/pq registers itself as "postgres" with database/sql.
		return postgres.New(postgres.Config{DriverName: "postgres", DSN: dsn}), nil
	case "sqlite":
		return sqlite.Open(withForeignKeys(dsn)), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w %q (supported: postgres, pq, sqlite, mysql, sqlserver)", ErrUnsupportedDriver, driver)
	}
}

// withForeignKeys turns on SQLite foreign key enforcement, which cascade
// deletes depend on.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// DB returns the underlying GORM handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close releases the connection pool. It must not be called on the Store
// handed to a Connection or Transaction callback.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates the catalog tables, indexes and foreign keys if they are
// missing. Running it against an up-to-date schema changes nothing.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(Schema()...); err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaApply, classify(err))
	}
	return nil
}

func (s *Store) Categories(ctx context.Context) *CategoriesRepository {
	return NewCategoriesRepository(s.db.WithContext(ctx))
}

func (s *Store) Products(ctx context.Context) *ProductsRepository {
	return NewProductsRepository(s.db.WithContext(ctx))
}

// Connection pins a single pooled connection for the duration of fn and
// returns it to the pool on every exit path.
func (s *Store) Connection(ctx context.Context, fn func(conn *Store) error) error {
	err := s.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
	return classify(err)
}

// Transaction runs fn with repositories bound to one transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(categories *CategoriesRepository, products *ProductsRepository) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewCategoriesRepository(tx), NewProductsRepository(tx))
	})
	return classify(err)
}

// Stats summarizes what the store currently holds.
type Stats struct {
	Categories  int64
	Products    int64
	PerCategory []CategoryCount
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	var err error

	if stats.Categories, err = s.Categories(ctx).Count(); err != nil {
		return Stats{}, err
	}
	products := s.Products(ctx)
	if stats.Products, err = products.Count(); err != nil {
		return Stats{}, err
	}
	if stats.PerCategory, err = products.CountByCategory(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
