package models

// Category groups products for the storefront sidebar.
// The name is unique within the kind and is always stored in its
// normalized (first letter uppercased) form.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:20;uniqueIndex;not null"`
}

func (c *Category) TableName() string {
	return "categories"
}
