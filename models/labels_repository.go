package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type LabelsRepository struct {
	db *gorm.DB
}

func NewLabelsRepository(db *gorm.DB) *LabelsRepository {
	return &LabelsRepository{
		db: db,
	}
}

func (r *LabelsRepository) All() ([]Label, error) {
	var labels []Label
	if err := r.db.Order("name").Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *LabelsRepository) ListNames() ([]string, error) {
	var names []string
	if err := r.db.Model(&Label{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// Exists reports whether a label with the exact given name is stored.
func (r *LabelsRepository) Exists(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&Label{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *LabelsRepository) Insert(name string) error {
	if err := r.db.Create(&Label{Name: name}).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("label %q: %w", name, ErrDuplicated)
		}
		return err
	}
	return nil
}

func (r *LabelsRepository) Rename(oldName, newName string) error {
	tx := r.db.Model(&Label{}).Where("name = ?", oldName).Update("name", newName)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("label %q: %w", newName, ErrDuplicated)
		}
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("label %q: %w", oldName, ErrNotFound)
	}
	return nil
}

func (r *LabelsRepository) Delete(name string) error {
	tx := r.db.Where("name = ?", name).Delete(&Label{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("label %q: %w", name, ErrNotFound)
	}
	return nil
}
