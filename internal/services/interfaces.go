package services

import (
	"context"
	"io"
	"time"

	"personal-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerStoreInterface loads and saves the whole ledger in one named slot
type LedgerStoreInterface interface {
	Load() models.Ledger
	Save(ledger models.Ledger) error
	Clear() error
}

// LedgerServiceInterface is the single entry point for changing and reading the ledger
type LedgerServiceInterface interface {
	// Add validates the draft and records it. A *models.ValidationError is
	// returned for rejected input; ErrNotPersisted accompanies a recorded
	// transaction whose write failed.
	Add(draft models.Draft) (*models.Transaction, error)

	// Remove deletes the transaction with the given id; removed is false when
	// no such transaction existed
	Remove(id int64) (removed bool, err error)

	Transactions() models.Ledger
	List(filter models.Filter) []models.Transaction
	Summary() models.Summary
	Count() int
}

// CategoryServiceInterface exposes the category table and description-based suggestions
type CategoryServiceInterface interface {
	CategoriesFor(transactionType models.TransactionType) []string
	AllCategories() map[models.TransactionType][]string

	// SuggestCategory picks a category of the given type from free text
	SuggestCategory(transactionType models.TransactionType, description string) *models.CategorySuggestion

	// FuzzyMatchCategory maps loosely typed input onto a known category label
	FuzzyMatchCategory(transactionType models.TransactionType, input string) (category string, score float64)
}

// TransactionGeneratorInterface generates realistic drafts for demo data
type TransactionGeneratorInterface interface {
	GenerateDrafts(start, end models.Date, count int) []models.Draft
	GenerateSalaryDrafts(start, end models.Date) []models.Draft
	GenerateBillDrafts(start, end models.Date) []models.Draft
	GetMerchantPool() []models.MerchantInfo
	SelectRandomMerchant() models.MerchantInfo
	GenerateAmount(category string) decimal.Decimal
	GenerateDate(start, end models.Date) models.Date
}

// DemoSeederInterface fills an empty ledger with generated transactions
type DemoSeederInterface interface {
	SeedIfEmpty(ctx context.Context) (int, error)
}

// ExportServiceInterface renders ledger views as spreadsheets
type ExportServiceInterface interface {
	// WriteXLSX writes the filtered listing. Nil bounds leave that side of the
	// date window open.
	WriteXLSX(w io.Writer, filter models.Filter, from, to *models.Date) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
