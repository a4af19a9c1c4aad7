package services

import (
	"time"

	"personal-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

type transactionGenerator struct {
	merchantPool []models.MerchantInfo
	faker        *gofakeit.Faker
}

const (
	salaryDay     = 25
	rentDay       = 1
	incomeShare   = 0.2
	minDraftCents = 1
)

// NewTransactionGenerator creates a new transaction generator
func NewTransactionGenerator() TransactionGeneratorInterface {
	return newTransactionGenerator(0)
}

// newTransactionGenerator seeds the faker; a zero seed picks a random one
func newTransactionGenerator(seed uint64) *transactionGenerator {
	return &transactionGenerator{
		merchantPool: initializeMerchantPool(),
		faker:        gofakeit.New(seed),
	}
}

// initializeMerchantPool creates a pool of payers and payees across every category
func initializeMerchantPool() []models.MerchantInfo {
	return []models.MerchantInfo{
		// Income
		{Name: "ACME Corporation", Category: models.CategorySalary},
		{Name: "Upwork", Category: models.CategoryFreelance},
		{Name: "Fiverr", Category: models.CategoryFreelance},
		{Name: "Vanguard Dividends", Category: models.CategoryInvestments},
		{Name: "Savings Interest", Category: models.CategoryInvestments},
		{Name: "Birthday Gift", Category: models.CategoryGifts},
		{Name: "Tax Refund", Category: models.CategoryOtherIncome},

		// Food
		{Name: "Whole Foods Market", Category: models.CategoryFood},
		{Name: "Trader Joe's", Category: models.CategoryFood},
		{Name: "Starbucks", Category: models.CategoryFood},
		{Name: "Chipotle Mexican Grill", Category: models.CategoryFood},

		// Transportation
		{Name: "Uber", Category: models.CategoryTransportation},
		{Name: "Shell", Category: models.CategoryTransportation},
		{Name: "Metro Transit", Category: models.CategoryTransportation},

		// Utilities
		{Name: "PG&E", Category: models.CategoryUtilities},
		{Name: "Comcast Xfinity", Category: models.CategoryUtilities},
		{Name: "Water Department", Category: models.CategoryUtilities},

		// Entertainment
		{Name: "Netflix", Category: models.CategoryEntertainment},
		{Name: "Spotify", Category: models.CategoryEntertainment},
		{Name: "AMC Theaters", Category: models.CategoryEntertainment},

		// Healthcare
		{Name: "CVS Pharmacy", Category: models.CategoryHealthcare},
		{Name: "Kaiser Permanente", Category: models.CategoryHealthcare},

		// Shopping
		{Name: "Amazon.com", Category: models.CategoryShopping},
		{Name: "IKEA", Category: models.CategoryShopping},
		{Name: "Best Buy", Category: models.CategoryShopping},

		// Education
		{Name: "Udemy", Category: models.CategoryEducation},
		{Name: "Coursera", Category: models.CategoryEducation},

		// Housing and other
		{Name: "Greenfield Property Management", Category: models.CategoryHousing},
		{Name: "Post Office", Category: models.CategoryOtherExpense},
	}
}

// GetMerchantPool returns the merchant pool
func (g *transactionGenerator) GetMerchantPool() []models.MerchantInfo {
	return g.merchantPool
}

// SelectRandomMerchant selects a random merchant from the pool
func (g *transactionGenerator) SelectRandomMerchant() models.MerchantInfo {
	return g.merchantPool[g.faker.IntRange(0, len(g.merchantPool)-1)]
}

func (g *transactionGenerator) selectMerchantOfType(transactionType models.TransactionType) models.MerchantInfo {
	candidates := make([]models.MerchantInfo, 0, len(g.merchantPool))
	for _, m := range g.merchantPool {
		if models.IsValidCategoryForType(transactionType, m.Category) {
			candidates = append(candidates, m)
		}
	}
	return candidates[g.faker.IntRange(0, len(candidates)-1)]
}

// GenerateAmount generates a realistic positive amount based on category
func (g *transactionGenerator) GenerateAmount(category string) decimal.Decimal {
	minValue, maxValue := getAmountRange(category)
	amount := decimal.NewFromFloat(g.faker.Float64Range(minValue, maxValue)).Round(2)
	if amount.LessThan(decimal.New(minDraftCents, -2)) {
		return decimal.New(minDraftCents, -2)
	}
	return amount
}

func getAmountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CategorySalary:         {2500.00, 6000.00},
		models.CategoryFreelance:      {150.00, 1500.00},
		models.CategoryInvestments:    {10.00, 400.00},
		models.CategoryGifts:          {20.00, 300.00},
		models.CategoryOtherIncome:    {10.00, 500.00},
		models.CategoryHousing:        {800.00, 2200.00},
		models.CategoryFood:           {8.00, 180.00},
		models.CategoryTransportation: {5.00, 80.00},
		models.CategoryUtilities:      {40.00, 200.00},
		models.CategoryEntertainment:  {8.00, 60.00},
		models.CategoryHealthcare:     {15.00, 300.00},
		models.CategoryShopping:       {20.00, 450.00},
		models.CategoryEducation:      {15.00, 200.00},
		models.CategoryOtherExpense:   {5.00, 100.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 10.00, 100.00
}

// GenerateDate picks a calendar day in [start, end]
func (g *transactionGenerator) GenerateDate(start, end models.Date) models.Date {
	if !end.After(start) {
		return start
	}
	t := g.faker.DateRange(start.Time, end.Time.Add(24*time.Hour-time.Nanosecond)).UTC()
	return models.NewDate(t.Year(), int(t.Month()), t.Day())
}

// GenerateSalaryDrafts generates one salary payment per month in range
func (g *transactionGenerator) GenerateSalaryDrafts(start, end models.Date) []models.Draft {
	employer := g.faker.Company()
	amount := g.GenerateAmount(models.CategorySalary)

	drafts := make([]models.Draft, 0)
	for _, month := range monthsBetween(start, end) {
		payday := clampToMonth(month, salaryDay)
		if payday.Before(start) || payday.After(end) {
			continue
		}
		drafts = append(drafts, newDraft(models.TransactionTypeIncome, "Salary - "+employer, amount, models.CategorySalary, payday))
	}
	return drafts
}

// GenerateBillDrafts generates rent and utility bills for each month in range
func (g *transactionGenerator) GenerateBillDrafts(start, end models.Date) []models.Draft {
	rent := g.GenerateAmount(models.CategoryHousing)

	drafts := make([]models.Draft, 0)
	for _, month := range monthsBetween(start, end) {
		rentDate := clampToMonth(month, rentDay)
		if !rentDate.Before(start) && !rentDate.After(end) {
			drafts = append(drafts, newDraft(models.TransactionTypeExpense, "Rent", rent, models.CategoryHousing, rentDate))
		}

		utility := g.selectMerchantOfCategory(models.CategoryUtilities)
		billDate := clampToMonth(month, g.faker.IntRange(5, 28))
		if !billDate.Before(start) && !billDate.After(end) {
			drafts = append(drafts, newDraft(
				models.TransactionTypeExpense,
				"Bill Payment - "+utility.Name,
				g.GenerateAmount(models.CategoryUtilities),
				models.CategoryUtilities,
				billDate,
			))
		}
	}
	return drafts
}

// GenerateDrafts generates count everyday drafts, roughly one in five income
func (g *transactionGenerator) GenerateDrafts(start, end models.Date, count int) []models.Draft {
	drafts := make([]models.Draft, 0, max(count, 0))

	for i := 0; i < count; i++ {
		transactionType := models.TransactionTypeExpense
		if g.faker.Float64Range(0, 1) < incomeShare {
			transactionType = models.TransactionTypeIncome
		}

		merchant := g.selectMerchantOfType(transactionType)
		description := "Purchase at " + merchant.Name
		if transactionType == models.TransactionTypeIncome {
			description = "Payment from " + merchant.Name
		}

		drafts = append(drafts, newDraft(
			transactionType,
			description,
			g.GenerateAmount(merchant.Category),
			merchant.Category,
			g.GenerateDate(start, end),
		))
	}

	return drafts
}

func (g *transactionGenerator) selectMerchantOfCategory(category string) models.MerchantInfo {
	for _, m := range g.merchantPool {
		if m.Category == category {
			return m
		}
	}
	return models.MerchantInfo{Name: category, Category: category}
}

func newDraft(transactionType models.TransactionType, description string, amount decimal.Decimal, category string, date models.Date) models.Draft {
	return models.Draft{
		Type:        transactionType,
		Description: description,
		Amount:      models.NewAmount(amount),
		Category:    category,
		Date:        &date,
	}
}

// monthsBetween returns the first day of every month touched by [start, end]
func monthsBetween(start, end models.Date) []models.Date {
	months := make([]models.Date, 0)
	current := models.NewDate(start.Year(), int(start.Month()), 1)
	for !current.After(end) {
		months = append(months, current)
		current = models.Date{Time: current.AddDate(0, 1, 0)}
	}
	return months
}

// clampToMonth returns the given day of month, capped to the month's last day
func clampToMonth(month models.Date, day int) models.Date {
	lastDay := month.AddDate(0, 1, -1).Day()
	return models.NewDate(month.Year(), int(month.Month()), min(day, lastDay))
}
