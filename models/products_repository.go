package models

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// GetAll returns every product with its category and label resolved for
// the listing view.
func (r *ProductsRepository) GetAll() ([]Product, error) {
	var products []Product
	if err := r.db.
		Preload("Category").
		Preload("Label").
		Order("name").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// CodeExists reports whether a product already uses the given code. Codes
// are stored lowercased, so the comparison is case-insensitive.
func (r *ProductsRepository) CodeExists(code string) (bool, error) {
	var count int64
	if err := r.db.Model(&Product{}).
		Where("code = ?", strings.ToLower(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProductsRepository) Create(p *Product) error {
	p.Code = strings.ToLower(p.Code)
	if err := r.db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("product code %q: %w", p.Code, ErrDuplicated)
		}
		return err
	}
	return nil
}
