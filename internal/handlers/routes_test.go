package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"personal-ledger/internal/database"
	"personal-ledger/internal/dto"
	"personal-ledger/internal/models"
	"personal-ledger/internal/repositories"
	"personal-ledger/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerAPI struct {
	echo *echo.Echo
	db   *database.DB
}

func newLedgerAPI(t *testing.T, db *database.DB) *ledgerAPI {
	t.Helper()

	registry := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetrics(registry)
	store := services.NewLedgerStore(repositories.NewSlotRepository(db.DB), models.DefaultSlotKey, metrics)
	ledger := services.NewLedgerService(store, metrics)

	e := echo.New()
	e.Validator = NewValidator()
	RegisterRoutes(e, Handlers{
		Transactions: NewTransactionHandler(ledger, services.NewExportService(ledger)),
		Summary:      NewSummaryHandler(ledger),
		Categories:   NewCategoryHandler(services.NewCategoryService()),
		Health:       NewHealthCheckHandler(db.DB, ledger),
		Metrics:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	return &ledgerAPI{echo: e, db: db}
}

func (a *ledgerAPI) do(t *testing.T, method, target, body string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec
}

func TestLedgerAPI_SalaryAndRent(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	api := newLedgerAPI(t, db)

	var salary dto.CreateTransactionResponse
	rec := api.do(t, http.MethodPost, "/api/v1/transactions",
		`{"type":"income","description":"Salary","amount":5000,"category":"Salary","date":"2024-01-01"}`, &salary)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, salary.Warning)

	var rent dto.CreateTransactionResponse
	rec = api.do(t, http.MethodPost, "/api/v1/transactions",
		`{"type":"expense","description":"  Rent  ","amount":"1200","category":"Housing","date":"2024-01-02"}`, &rent)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Rent", rent.Transaction.Description)
	assert.NotEqual(t, salary.Transaction.ID, rent.Transaction.ID)

	var summary dto.SummaryResponse
	api.do(t, http.MethodGet, "/api/v1/summary", "", &summary)
	assert.Equal(t, dto.SummaryResponse{
		Income:        "5000.00",
		Expense:       "1200.00",
		Balance:       "3800.00",
		BalanceStatus: models.BalanceStatusPlus,
	}, summary)

	var list dto.ListTransactionsResponse
	api.do(t, http.MethodGet, "/api/v1/transactions", "", &list)
	require.Len(t, list.Transactions, 2)
	assert.Equal(t, "Rent", list.Transactions[0].Description)
	assert.Equal(t, "Salary", list.Transactions[1].Description)

	// a fresh service over the same slot sees the saved ledger
	reloaded := newLedgerAPI(t, db)
	var expenses dto.ListTransactionsResponse
	reloaded.do(t, http.MethodGet, "/api/v1/transactions?filter=expense", "", &expenses)
	require.Len(t, expenses.Transactions, 1)
	assert.Equal(t, rent.Transaction.ID, expenses.Transactions[0].ID)

	var removed dto.RemoveTransactionResponse
	rec = reloaded.do(t, http.MethodDelete, "/api/v1/transactions/"+strconv.FormatInt(salary.Transaction.ID, 10), "", &removed)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, removed.Removed)

	reloaded.do(t, http.MethodGet, "/api/v1/summary", "", &summary)
	assert.Equal(t, "-1200.00", summary.Balance)
	assert.Equal(t, models.BalanceStatusMinus, summary.BalanceStatus)
}

func TestLedgerAPI_RejectsFirstInvalidField(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	api := newLedgerAPI(t, db)

	var errResp ErrorResponse
	rec := api.do(t, http.MethodPost, "/api/v1/transactions",
		`{"type":"expense","description":"   ","amount":-5,"category":"Salary"}`, &errResp)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "TRANSACTION_001", errResp.Error.Code)

	rec = api.do(t, http.MethodPost, "/api/v1/transactions",
		`{"type":"expense","description":"Lunch","amount":12.5,"category":"Salary","date":"2024-01-03"}`, &errResp)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "TRANSACTION_003", errResp.Error.Code)

	var list dto.ListTransactionsResponse
	api.do(t, http.MethodGet, "/api/v1/transactions", "", &list)
	assert.Empty(t, list.Transactions)
	assert.Equal(t, msgNoTransactions, list.Message)
}

func TestLedgerAPI_HealthAndMetrics(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	api := newLedgerAPI(t, db)
	api.do(t, http.MethodPost, "/api/v1/transactions",
		`{"type":"income","description":"Gift","amount":20,"category":"Gifts","date":"2024-02-01"}`, nil)

	var health map[string]interface{}
	rec := api.do(t, http.MethodGet, "/health", "", &health)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, float64(1), health["transactions"])

	rec = api.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `ledger_transactions_added_total{type="income"} 1`)
}

func TestLedgerAPI_HealthUnavailable(t *testing.T) {
	db := database.SetupTestDB(t)
	api := newLedgerAPI(t, db)
	require.NoError(t, db.Close())

	var errResp ErrorResponse
	rec := api.do(t, http.MethodGet, "/health", "", &errResp)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "SYSTEM_003", errResp.Error.Code)
}

func TestLedgerAPI_ExportWorkbook(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	api := newLedgerAPI(t, db)
	api.do(t, http.MethodPost, "/api/v1/transactions",
		`{"type":"expense","description":"Groceries","amount":54.2,"category":"Food","date":"2024-02-03"}`, nil)

	rec := api.do(t, http.MethodGet, "/api/v1/transactions/export.xlsx?filter=expense", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get(echo.HeaderContentType))
	// xlsx files are zip archives
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))
}
