package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the direction of a transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Category classifies a transaction. The set of valid categories depends on
// the transaction type; ValidForType is the single source of truth shared by
// the write path and the analytics queries.
type Category string

const (
	// Income categories.
	CategorySalary      Category = "salary"
	CategoryFreelance   Category = "freelance"
	CategoryBusiness    Category = "business"
	CategoryInvestment  Category = "investment"
	CategoryRental      Category = "rental"
	CategoryGift        Category = "gift"
	CategoryBonus       Category = "bonus"
	CategoryOtherIncome Category = "other_income"

	// Expense categories.
	CategoryFood              Category = "food"
	CategoryTransportation    Category = "transportation"
	CategoryHousing           Category = "housing"
	CategoryUtilities         Category = "utilities"
	CategoryHealthcare        Category = "healthcare"
	CategoryEducation         Category = "education"
	CategoryEntertainment     Category = "entertainment"
	CategoryShopping          Category = "shopping"
	CategoryTravel            Category = "travel"
	CategoryInsurance         Category = "insurance"
	CategoryDebtPayment       Category = "debt_payment"
	CategorySavings           Category = "savings"
	CategoryInvestmentExpense Category = "investment_expense"
	CategoryOtherExpense      Category = "other_expense"
)

var incomeCategories = []Category{
	CategorySalary,
	CategoryFreelance,
	CategoryBusiness,
	CategoryInvestment,
	CategoryRental,
	CategoryGift,
	CategoryBonus,
	CategoryOtherIncome,
}

var expenseCategories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryHousing,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEducation,
	CategoryEntertainment,
	CategoryShopping,
	CategoryTravel,
	CategoryInsurance,
	CategoryDebtPayment,
	CategorySavings,
	CategoryInvestmentExpense,
	CategoryOtherExpense,
}

func categorySet(categories []Category) map[Category]struct{} {
	set := make(map[Category]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}

	return set
}

var (
	incomeCategorySet  = categorySet(incomeCategories)
	expenseCategorySet = categorySet(expenseCategories)
)

// IncomeCategories returns the categories valid for income transactions.
func IncomeCategories() []Category {
	return append([]Category(nil), incomeCategories...)
}

// ExpenseCategories returns the categories valid for expense transactions.
func ExpenseCategories() []Category {
	return append([]Category(nil), expenseCategories...)
}

// ValidForType reports whether the category belongs to the set for the given type.
func (c Category) ValidForType(t Type) bool {
	switch t {
	case TypeIncome:
		_, ok := incomeCategorySet[c]
		return ok
	case TypeExpense:
		_, ok := expenseCategorySet[c]
		return ok
	default:
		return false
	}
}

// Transaction represents a single income or expense record.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        Type
	Category    Category
	Amount      float64 // Non-negative; direction is carried by Type.
	Description string
	Date        time.Time
	CreatedAt   time.Time
}
