// Package categorizer assigns spending categories to bank transactions
// using an ordered keyword table with amount/type fallbacks. Categorize
// is a pure total function: every input maps to exactly one category and
// the same input always maps to the same category.
package categorizer

import (
	"strings"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

var (
	largeAmount  = decimal.NewFromInt(10000)
	mediumAmount = decimal.NewFromInt(1000)
)

// Categorize maps one transaction to a category.
//
// The keyword table is scanned in declared order and the first matching
// substring wins. If nothing matches, credits become Income and debits
// fall back on amount: above 10000 Shopping, above 1000 Bills & Utilities,
// otherwise Other.
func Categorize(description string, amount decimal.Decimal, txType models.TransactionType) models.Category {
	descriptionLower := strings.ToLower(description)

	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(descriptionLower, keyword) {
				return entry.category
			}
		}
	}

	if txType == models.TypeCredit {
		return models.CategoryIncome
	}
	if amount.GreaterThan(largeAmount) {
		return models.CategoryShopping
	}
	if amount.GreaterThan(mediumAmount) {
		return models.CategoryBillsUtilities
	}
	return models.CategoryOther
}

// CategorizeBatch populates the Category field of every row. Rows are
// independent, so the assigned category never depends on position. The
// input slice is returned with categories set in place; an empty slice
// comes back unchanged.
func CategorizeBatch(transactions []models.Transaction) []models.Transaction {
	for i := range transactions {
		transactions[i].Category = Categorize(
			transactions[i].Description,
			transactions[i].Amount,
			transactions[i].Type,
		)
	}
	return transactions
}
