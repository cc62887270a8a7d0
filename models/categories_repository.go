package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

// Any reports whether at least one category row exists.
func (r *CategoriesRepository) Any() (bool, error) {
	var ids []uint
	if err := r.db.Model(&Category{}).Limit(1).Pluck("id", &ids).Error; err != nil {
		return false, classify(err)
	}
	return len(ids) > 0, nil
}

func (r *CategoriesRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&Category{}).Count(&n).Error; err != nil {
		return 0, classify(err)
	}
	return n, nil
}

func (r *CategoriesRepository) GetAllCategories() ([]Category, error) {
	var categories []Category
	if err := r.db.
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("products.id") }).
		Order("id").
		Find(&categories).Error; err != nil {
		return nil, classify(err)
	}
	return categories, nil
}

func (r *CategoriesRepository) GetByTitle(title string) (*Category, error) {
	var category Category
	if err := r.db.
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("products.id") }).
		Where("title = ?", title).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, classify(err)
	}
	return &category, nil
}

// CreateCategory inserts a single category together with its products.
func (r *CategoriesRepository) CreateCategory(category *Category) error {
	categories := []Category{*category}
	if err := r.CreateCategories(categories); err != nil {
		return err
	}
	*category = categories[0]
	return nil
}

// CreateCategories inserts the categories first and then each category's
// products with CategoryID filled in. Generated ids are written back into the
// slice. It is not atomic on its own; run it inside Store.Transaction.
func (r *CategoriesRepository) CreateCategories(categories []Category) error {
	if len(categories) == 0 {
		return nil
	}
	if err := r.db.Omit(clause.Associations).Create(&categories).Error; err != nil {
		return classify(err)
	}
	for i := range categories {
		products := categories[i].Products
		if len(products) == 0 {
			continue
		}
		for j := range products {
			products[j].CategoryID = categories[i].ID
		}
		if err := r.db.Create(&products).Error; err != nil {
			return classify(err)
		}
	}
	return nil
}

// DeleteCategory removes a category; the foreign key cascades to its products.
func (r *CategoriesRepository) DeleteCategory(id uint) error {
	res := r.db.Delete(&Category{}, id)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
