package models

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. The code is unique case-insensitively and is
// stored lowercased. Category and Label are weak references: deleting the
// referenced record neither cascades nor blocks.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:40;not null"`
	Code        string          `gorm:"size:20;uniqueIndex;not null"`
	Description string          `gorm:"size:300"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	CategoryID  uint
	Category    Category `gorm:"foreignKey:CategoryID"`
	LabelID     uint
	Label       Label `gorm:"foreignKey:LabelID"`
}

func (p *Product) TableName() string {
	return "products"
}
