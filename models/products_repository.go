package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

type ProductFilters struct {
	CategoryTitle string
	PriceLessThan *decimal.Decimal
}

// CategoryCount is one row of CountByCategory.
type CategoryCount struct {
	Title    string
	Products int64
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, classify(err)
	}
	return products, nil
}

func (r *ProductsRepository) GetFilteredProducts(offset, limit int, filters ProductFilters) ([]Product, int64, error) {
	var products []Product
	var total int64

	query := r.db.Model(&Product{}).
		Joins("JOIN categories ON categories.id = products.category_id")

	// Filter
	if filters.CategoryTitle != "" {
		query = query.Where("categories.title = ?", filters.CategoryTitle)
	}
	if filters.PriceLessThan != nil {
		query = query.Where("products.price < ?", *filters.PriceLessThan)
	}

	// Count total after filtering
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, classify(err)
	}

	if err := query.Select("products.*").
		Order("products.id").
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, 0, classify(err)
	}

	return products, total, nil
}

func (r *ProductsRepository) GetByTitle(title string) (*Product, error) {
	var product Product
	if err := r.db.Where("title = ?", title).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, classify(err)
	}
	return &product, nil
}

func (r *ProductsRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&Product{}).Count(&n).Error; err != nil {
		return 0, classify(err)
	}
	return n, nil
}

// CountByCategory reports the number of products per category, including
// empty ones, in category id order.
func (r *ProductsRepository) CountByCategory() ([]CategoryCount, error) {
	var counts []CategoryCount
	err := r.db.Model(&Category{}).
		Select("categories.title AS title, COUNT(products.id) AS products").
		Joins("LEFT JOIN products ON products.category_id = categories.id").
		Group("categories.id, categories.title").
		Order("categories.id").
		Scan(&counts).Error
	if err != nil {
		return nil, classify(err)
	}
	return counts, nil
}
