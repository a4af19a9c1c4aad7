package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"personal-ledger/internal/models"
)

// ErrNotPersisted means the change is live in memory but the write to storage failed
var ErrNotPersisted = errors.New("change applied but not persisted")

const (
	idOffsetRange   = 1000
	maxIDAttempts   = 1000
	operationAdd    = "add"
	operationRemove = "remove"
)

type ledgerService struct {
	mu      sync.Mutex
	store   LedgerStoreInterface
	metrics MetricsRecorderInterface
	ledger  models.Ledger
	now     func() time.Time
	rng     *rand.Rand
}

// NewLedgerService loads the stored ledger once and serves it from memory
func NewLedgerService(store LedgerStoreInterface, metrics MetricsRecorderInterface) LedgerServiceInterface {
	s := &ledgerService{
		store:   store,
		metrics: metrics,
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.ledger = store.Load()
	s.recordSize()
	return s
}

// Add validates and records a draft
func (s *ledgerService) Add(draft models.Draft) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if verr := draft.Validate(); verr != nil {
		s.metrics.IncrementCounter(MetricValidationFailed, map[string]string{"field": verr.Field})
		slog.Debug("Draft rejected", "field", verr.Field, "error", verr.Err)
		return nil, verr
	}

	tx := draft.ToTransaction(s.nextID())
	s.ledger = append(s.ledger, tx)

	s.metrics.IncrementCounter(MetricTransactionAdded, map[string]string{"type": string(tx.Type)})
	s.recordSize()

	slog.Info("Transaction added",
		"id", tx.ID,
		"type", tx.Type,
		"category", tx.Category,
		"date", tx.Date.String(),
	)

	if err := s.persist(operationAdd); err != nil {
		return &tx, err
	}
	return &tx, nil
}

// Remove deletes the transaction with id. An unknown id changes nothing.
func (s *ledgerService) Remove(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	if idx := s.ledger.IndexOf(id); idx >= 0 {
		next := make(models.Ledger, 0, len(s.ledger)-1)
		next = append(next, s.ledger[:idx]...)
		s.ledger = append(next, s.ledger[idx+1:]...)
		removed = true

		s.metrics.IncrementCounter(MetricTransactionRemoved, nil)
		s.recordSize()
		slog.Info("Transaction removed", "id", id)
	} else {
		slog.Debug("Remove of unknown transaction ignored", "id", id)
	}

	if err := s.persist(operationRemove); err != nil {
		return removed, err
	}
	return removed, nil
}

// Transactions returns a copy of the ledger in insertion order
func (s *ledgerService) Transactions() models.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Clone()
}

// List returns the filtered view, newest first
func (s *ledgerService) List(filter models.Filter) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return FilteredSorted(s.ledger, filter)
}

// Summary returns the ledger totals
func (s *ledgerService) Summary() models.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Summarize(s.ledger)
}

func (s *ledgerService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.ledger)
}

// nextID derives an id from the clock plus a random offset, re-rolling on collision
func (s *ledgerService) nextID() int64 {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.now().UnixMilli() + s.rng.Int63n(idOffsetRange)
		if !s.ledger.Contains(id) {
			return id
		}
	}

	var highest int64
	for i := range s.ledger {
		if s.ledger[i].ID > highest {
			highest = s.ledger[i].ID
		}
	}
	return highest + 1
}

func (s *ledgerService) persist(operation string) error {
	if err := s.store.Save(s.ledger); err != nil {
		s.metrics.IncrementCounter(MetricPersistFailed, map[string]string{"operation": operation})
		slog.Error("Ledger change kept in memory but not persisted",
			"operation", operation,
			"error", err,
		)
		return fmt.Errorf("%w: %v", ErrNotPersisted, err)
	}
	return nil
}

func (s *ledgerService) recordSize() {
	s.metrics.RecordGauge(MetricTransactions, float64(len(s.ledger)), nil)
}
