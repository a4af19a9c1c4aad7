package services

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"personal-ledger/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	exportSheet = "Transactions"

	// built-in excelize number format "0.00"
	amountNumFmt = 2
)

var exportHeaders = []string{"Date", "Type", "Description", "Category", "Amount"}

type exportService struct {
	ledger LedgerServiceInterface
}

// NewExportService creates an exporter over the ledger service's read views
func NewExportService(ledger LedgerServiceInterface) ExportServiceInterface {
	return &exportService{ledger: ledger}
}

// WriteXLSX writes the filtered listing, newest first, followed by the ledger totals
func (s *exportService) WriteXLSX(w io.Writer, filter models.Filter, from, to *models.Date) error {
	start := time.Now()

	transactions := withinDates(s.ledger.List(filter), from, to)
	summary := s.ledger.Summary()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: amountNumFmt})
	if err != nil {
		return fmt.Errorf("failed to create amount style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	sw := &sheetWriter{f: f, sheet: exportSheet}

	for i, h := range exportHeaders {
		sw.value(i+1, 1, h)
	}
	sw.style("A1", "E1", headerStyle)

	row := 2
	for _, t := range transactions {
		sw.value(1, row, t.Date.String())
		sw.value(2, row, string(t.Type))
		sw.value(3, row, t.Description)
		sw.value(4, row, t.Category)
		sw.value(5, row, t.Amount.InexactFloat64())
		row++
	}
	if row > 2 {
		sw.style("E2", fmt.Sprintf("E%d", row-1), amountStyle)
	}

	// totals cover the whole ledger regardless of filter
	row++
	totals := []struct {
		label string
		value float64
	}{
		{"Total Income", summary.Income.InexactFloat64()},
		{"Total Expense", summary.Expense.InexactFloat64()},
		{"Balance", summary.Balance.InexactFloat64()},
	}
	for _, total := range totals {
		labelCell := sw.value(4, row, total.label)
		valueCell := sw.value(5, row, total.value)
		sw.style(labelCell, labelCell, headerStyle)
		sw.style(valueCell, valueCell, amountStyle)
		row++
	}

	sw.width("A", 12) // date
	sw.width("B", 10) // type
	sw.width("C", 40) // description
	sw.width("D", 18) // category
	sw.width("E", 14) // amount

	if sw.err != nil {
		return fmt.Errorf("failed to fill sheet: %w", sw.err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}

	slog.Info("Transactions exported",
		"filter", string(filter),
		"rows", len(transactions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// sheetWriter fills one sheet and keeps the first excelize error; later calls are no-ops
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

// value sets the cell at (col, row) and returns its name
func (sw *sheetWriter) value(col, row int, v any) string {
	if sw.err != nil {
		return ""
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		sw.err = err
		return ""
	}
	sw.err = sw.f.SetCellValue(sw.sheet, cell, v)
	return cell
}

func (sw *sheetWriter) style(from, to string, style int) {
	if sw.err != nil {
		return
	}
	sw.err = sw.f.SetCellStyle(sw.sheet, from, to, style)
}

func (sw *sheetWriter) width(col string, width float64) {
	if sw.err != nil {
		return
	}
	sw.err = sw.f.SetColWidth(sw.sheet, col, col, width)
}

// withinDates keeps transactions dated inside [from, to]
func withinDates(transactions []models.Transaction, from, to *models.Date) []models.Transaction {
	if from == nil && to == nil {
		return transactions
	}

	out := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if from != nil && t.Date.Before(*from) {
			continue
		}
		if to != nil && t.Date.After(*to) {
			continue
		}
		out = append(out, t)
	}
	return out
}
