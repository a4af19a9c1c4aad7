package services

import (
	"testing"

	"personal-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionGeneratorTestSuite struct {
	suite.Suite
	generator *transactionGenerator
	start     models.Date
	end       models.Date
}

func TestTransactionGeneratorSuite(t *testing.T) {
	suite.Run(t, new(TransactionGeneratorTestSuite))
}

func (s *TransactionGeneratorTestSuite) SetupTest() {
	s.generator = newTransactionGenerator(42)
	s.start = models.NewDate(2024, 1, 1)
	s.end = models.NewDate(2024, 3, 31)
}

// Merchant Pool Tests

func (s *TransactionGeneratorTestSuite) TestMerchantPool_CoversEveryCategory() {
	covered := make(map[string]bool)
	for _, merchant := range s.generator.GetMerchantPool() {
		s.NotEmpty(merchant.Name)
		_, ok := models.CategoryType(merchant.Category)
		s.True(ok, "merchant %s has unknown category %s", merchant.Name, merchant.Category)
		covered[merchant.Category] = true
	}

	for _, category := range models.AllCategories() {
		s.True(covered[category], "no merchant for category %s", category)
	}
}

func (s *TransactionGeneratorTestSuite) TestSelectRandomMerchant_ReturnsPoolMember() {
	pool := s.generator.GetMerchantPool()
	for i := 0; i < 100; i++ {
		s.Contains(pool, s.generator.SelectRandomMerchant())
	}
}

// Amount Tests

func (s *TransactionGeneratorTestSuite) TestGenerateAmount_WithinCategoryRange() {
	for _, category := range models.AllCategories() {
		minValue, maxValue := getAmountRange(category)
		for i := 0; i < 20; i++ {
			amount := s.generator.GenerateAmount(category)
			s.True(amount.IsPositive())
			s.True(amount.GreaterThanOrEqual(decimal.NewFromFloat(minValue)), "%s below range for %s", amount, category)
			s.True(amount.LessThanOrEqual(decimal.NewFromFloat(maxValue)), "%s above range for %s", amount, category)
			s.LessOrEqual(-amount.Exponent(), int32(2))
		}
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateAmount_UnknownCategory() {
	amount := s.generator.GenerateAmount("Lottery")
	s.True(amount.GreaterThanOrEqual(decimal.NewFromInt(10)))
	s.True(amount.LessThanOrEqual(decimal.NewFromInt(100)))
}

// Date Tests

func (s *TransactionGeneratorTestSuite) TestGenerateDate_WithinRange() {
	for i := 0; i < 100; i++ {
		date := s.generator.GenerateDate(s.start, s.end)
		s.False(date.Before(s.start))
		s.False(date.After(s.end))
		s.Zero(date.Hour())
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateDate_EmptyRange() {
	s.Equal(s.end, s.generator.GenerateDate(s.end, s.start))
	s.Equal(s.start, s.generator.GenerateDate(s.start, s.start))
}

// Draft Tests

func (s *TransactionGeneratorTestSuite) TestGenerateSalaryDrafts_OnePerMonth() {
	drafts := s.generator.GenerateSalaryDrafts(s.start, s.end)

	s.Len(drafts, 3)
	for i, draft := range drafts {
		s.Nil(draft.Validate())
		s.Equal(models.TransactionTypeIncome, draft.Type)
		s.Equal(models.CategorySalary, draft.Category)
		s.Equal(salaryDay, draft.Date.Day())
		s.Equal(i+1, int(draft.Date.Month()))
		s.Contains(draft.Description, "Salary - ")
	}
}

func (s *TransactionGeneratorTestSuite) TestGenerateSalaryDrafts_SkipsPaydayOutsideRange() {
	drafts := s.generator.GenerateSalaryDrafts(models.NewDate(2024, 1, 1), models.NewDate(2024, 1, 10))
	s.Empty(drafts)
}

func (s *TransactionGeneratorTestSuite) TestGenerateBillDrafts() {
	drafts := s.generator.GenerateBillDrafts(s.start, s.end)

	rent := 0
	for _, draft := range drafts {
		s.Nil(draft.Validate())
		s.Equal(models.TransactionTypeExpense, draft.Type)
		s.False(draft.Date.Before(s.start))
		s.False(draft.Date.After(s.end))
		if draft.Category == models.CategoryHousing {
			rent++
			s.Equal(rentDay, draft.Date.Day())
		} else {
			s.Equal(models.CategoryUtilities, draft.Category)
		}
	}
	s.Equal(3, rent)
	s.Len(drafts, 6)
}

func (s *TransactionGeneratorTestSuite) TestGenerateDrafts_AllValid() {
	drafts := s.generator.GenerateDrafts(s.start, s.end, 200)

	s.Len(drafts, 200)
	types := make(map[models.TransactionType]int)
	for _, draft := range drafts {
		s.Nil(draft.Validate(), "generated draft %+v is invalid", draft)
		s.False(draft.Date.Before(s.start))
		s.False(draft.Date.After(s.end))
		types[draft.Type]++
	}
	s.Positive(types[models.TransactionTypeIncome])
	s.Positive(types[models.TransactionTypeExpense])
}

func (s *TransactionGeneratorTestSuite) TestGenerateDrafts_ZeroCount() {
	s.Empty(s.generator.GenerateDrafts(s.start, s.end, 0))
	s.Empty(s.generator.GenerateDrafts(s.start, s.end, -3))
}

func (s *TransactionGeneratorTestSuite) TestClampToMonth() {
	s.Equal(models.NewDate(2024, 2, 29), clampToMonth(models.NewDate(2024, 2, 1), 31))
	s.Equal(models.NewDate(2023, 2, 28), clampToMonth(models.NewDate(2023, 2, 1), 30))
	s.Equal(models.NewDate(2024, 4, 25), clampToMonth(models.NewDate(2024, 4, 1), 25))
}

func (s *TransactionGeneratorTestSuite) TestMonthsBetween() {
	months := monthsBetween(models.NewDate(2023, 11, 15), models.NewDate(2024, 2, 3))

	s.Equal([]models.Date{
		models.NewDate(2023, 11, 1),
		models.NewDate(2023, 12, 1),
		models.NewDate(2024, 1, 1),
		models.NewDate(2024, 2, 1),
	}, months)
}
