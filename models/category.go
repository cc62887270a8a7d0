package models

// Category represents a product category.
// It owns its products: deleting a category deletes them too.
type Category struct {
	ID       uint      `gorm:"primaryKey"`
	Title    string    `gorm:"size:64;uniqueIndex;not null"`
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (c *Category) TableName() string {
	return "categories"
}
