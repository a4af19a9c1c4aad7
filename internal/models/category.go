package models

// Income categories
const (
	CategorySalary      = "Salary"
	CategoryFreelance   = "Freelance"
	CategoryInvestments = "Investments"
	CategoryGifts       = "Gifts"
	CategoryOtherIncome = "Other Income"
)

// Expense categories
const (
	CategoryHousing        = "Housing"
	CategoryFood           = "Food"
	CategoryTransportation = "Transportation"
	CategoryUtilities      = "Utilities"
	CategoryEntertainment  = "Entertainment"
	CategoryHealthcare     = "Healthcare"
	CategoryShopping       = "Shopping"
	CategoryEducation      = "Education"
	CategoryOtherExpense   = "Other Expense"
)

var incomeCategories = []string{
	CategorySalary,
	CategoryFreelance,
	CategoryInvestments,
	CategoryGifts,
	CategoryOtherIncome,
}

var expenseCategories = []string{
	CategoryHousing,
	CategoryFood,
	CategoryTransportation,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryShopping,
	CategoryEducation,
	CategoryOtherExpense,
}

// CategoriesFor returns the category labels valid for a transaction type.
// Unknown types have no categories.
func CategoriesFor(transactionType TransactionType) []string {
	var src []string
	switch transactionType {
	case TransactionTypeIncome:
		src = incomeCategories
	case TransactionTypeExpense:
		src = expenseCategories
	default:
		return []string{}
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// AllCategories returns every category label, income first
func AllCategories() []string {
	out := make([]string, 0, len(incomeCategories)+len(expenseCategories))
	out = append(out, incomeCategories...)
	return append(out, expenseCategories...)
}

// CategoryType returns the transaction type a category belongs to
func CategoryType(category string) (TransactionType, bool) {
	for _, c := range incomeCategories {
		if c == category {
			return TransactionTypeIncome, true
		}
	}
	for _, c := range expenseCategories {
		if c == category {
			return TransactionTypeExpense, true
		}
	}
	return "", false
}

// IsValidCategoryForType checks category membership in the set for transactionType
func IsValidCategoryForType(transactionType TransactionType, category string) bool {
	owner, ok := CategoryType(category)
	return ok && owner == transactionType
}
