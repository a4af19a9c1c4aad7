package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"personal-ledger/internal/models"
	"personal-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

// transactionRecord is the persisted form of a transaction
type transactionRecord struct {
	ID          int64       `json:"id"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
}

type ledgerStore struct {
	repo    repositories.SlotRepositoryInterface
	key     string
	metrics MetricsRecorderInterface
}

// NewLedgerStore creates a store that keeps the ledger under key
func NewLedgerStore(repo repositories.SlotRepositoryInterface, key string, metrics MetricsRecorderInterface) LedgerStoreInterface {
	if key == "" {
		key = models.DefaultSlotKey
	}
	return &ledgerStore{
		repo:    repo,
		key:     key,
		metrics: metrics,
	}
}

// Load returns the stored ledger. Missing or unreadable data yields an empty ledger.
func (s *ledgerStore) Load() models.Ledger {
	data, err := s.repo.Get(s.key)
	if err != nil {
		if errors.Is(err, repositories.ErrSlotNotFound) {
			slog.Debug("No stored ledger, starting empty", "slot", s.key)
			return models.Ledger{}
		}
		return s.recover("read failed", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return models.Ledger{}
	}

	ledger, err := decodeLedger(data)
	if err != nil {
		return s.recover("stored data is corrupt", err)
	}

	slog.Info("Ledger loaded", "slot", s.key, "transactions", len(ledger))
	return ledger
}

func (s *ledgerStore) recover(reason string, err error) models.Ledger {
	slog.Warn("Discarding stored ledger, starting empty",
		"slot", s.key,
		"reason", reason,
		"error", err,
	)
	s.metrics.IncrementCounter(MetricLoadRecovered, nil)
	return models.Ledger{}
}

// Save overwrites the slot with the full ledger
func (s *ledgerStore) Save(ledger models.Ledger) error {
	data, err := encodeLedger(ledger)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	start := time.Now()
	err = s.repo.Put(s.key, data)
	s.metrics.RecordProcessingTime(MetricSaveDuration, time.Since(start))
	if err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	return nil
}

// Clear removes the slot entirely
func (s *ledgerStore) Clear() error {
	if err := s.repo.Delete(s.key); err != nil {
		return fmt.Errorf("failed to clear ledger: %w", err)
	}

	slog.Info("Ledger cleared", "slot", s.key)
	return nil
}

func encodeLedger(ledger models.Ledger) ([]byte, error) {
	records := make([]transactionRecord, 0, len(ledger))
	for _, t := range ledger {
		records = append(records, transactionRecord{
			ID:          t.ID,
			Type:        string(t.Type),
			Description: t.Description,
			Amount:      json.Number(t.Amount.String()),
			Category:    t.Category,
			Date:        t.Date.String(),
		})
	}
	return json.Marshal(records)
}

func decodeLedger(data []byte) (models.Ledger, error) {
	var records []transactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	ledger := make(models.Ledger, 0, len(records))
	for i, r := range records {
		amount, err := decimal.NewFromString(r.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("record %d: invalid amount %q: %w", i, r.Amount, err)
		}

		date, err := models.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		ledger = append(ledger, models.Transaction{
			ID:          r.ID,
			Type:        models.TransactionType(r.Type),
			Description: r.Description,
			Amount:      amount,
			Category:    r.Category,
			Date:        date,
		})
	}

	if err := ledger.Validate(); err != nil {
		return nil, err
	}

	return ledger, nil
}
