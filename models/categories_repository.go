package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		db: db,
	}
}

func (r *CategoriesRepository) All() ([]Category, error) {
	var categories []Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoriesRepository) ListNames() ([]string, error) {
	var names []string
	if err := r.db.Model(&Category{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// Exists reports whether a category with the exact given name is stored.
func (r *CategoriesRepository) Exists(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CategoriesRepository) Insert(name string) error {
	if err := r.db.Create(&Category{Name: name}).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("category %q: %w", name, ErrDuplicated)
		}
		return err
	}
	return nil
}

// Rename updates the record currently named oldName. The name is the unique
// secondary key; the surrogate id stays untouched.
func (r *CategoriesRepository) Rename(oldName, newName string) error {
	tx := r.db.Model(&Category{}).Where("name = ?", oldName).Update("name", newName)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("category %q: %w", newName, ErrDuplicated)
		}
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("category %q: %w", oldName, ErrNotFound)
	}
	return nil
}

func (r *CategoriesRepository) Delete(name string) error {
	tx := r.db.Where("name = ?", name).Delete(&Category{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("category %q: %w", name, ErrNotFound)
	}
	return nil
}
