package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
// CategoryID is a lookup reference only; the owning Category holds the product.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	CategoryID  uint            `gorm:"not null;index"`
	Title       string          `gorm:"size:128;uniqueIndex;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(16,4);not null"`
	Stock       int             `gorm:"not null"`
	Description *string         `gorm:"size:512"`
}

func (p *Product) TableName() string {
	return "products"
}

// Schema lists the models in dependency order, parents first.
func Schema() []any {
	return []any{&Category{}, &Product{}}
}
