package repositories

import (
	"errors"
	"fmt"

	"personal-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSlotNotFound = errors.New("slot not found")

// SlotRepository stores whole values under string keys
type SlotRepository struct {
	db *gorm.DB
}

// NewSlotRepository creates a new slot repository
func NewSlotRepository(db *gorm.DB) SlotRepositoryInterface {
	return &SlotRepository{
		db: db,
	}
}

// Get returns the raw value stored under key
func (r *SlotRepository) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, models.ErrEmptySlotKey
	}

	var slot models.Slot
	if err := r.db.Where(map[string]interface{}{"key": key}).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get slot %q: %w", key, err)
	}

	return []byte(slot.Value), nil
}

// Put overwrites the value stored under key, creating the slot if needed
func (r *SlotRepository) Put(key string, value []byte) error {
	slot := &models.Slot{
		Key:   key,
		Value: string(value),
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(slot).Error
	if err != nil {
		return fmt.Errorf("failed to put slot %q: %w", key, err)
	}

	return nil
}

// Delete removes the slot. Deleting an absent slot is not an error.
func (r *SlotRepository) Delete(key string) error {
	if key == "" {
		return models.ErrEmptySlotKey
	}

	if err := r.db.Where(map[string]interface{}{"key": key}).Delete(&models.Slot{}).Error; err != nil {
		return fmt.Errorf("failed to delete slot %q: %w", key, err)
	}

	return nil
}
