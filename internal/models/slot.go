package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// DefaultSlotKey is the slot the ledger is stored under
const DefaultSlotKey = "transactions"

var ErrEmptySlotKey = errors.New("slot key is required")

// Slot is one named entry of the local key-value store
type Slot struct {
	Key       string    `gorm:"type:varchar(100);primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeSave hook for Slot
func (s *Slot) BeforeSave(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return s.Validate()
}

// Validate validates the slot fields
func (s *Slot) Validate() error {
	if strings.TrimSpace(s.Key) == "" {
		return ErrEmptySlotKey
	}
	return nil
}

// TableName returns the table name for Slot
func (s *Slot) TableName() string {
	return "slots"
}
