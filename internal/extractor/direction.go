package extractor

import (
	"fjacquet/paynotify/internal/keywords"
	"fjacquet/paynotify/internal/models"
)

// ExtractDirection determines the payment direction from keyword polarity.
// The second return value reports whether the direction was explicit in the
// text; a defaulted direction carries a lower confidence contribution.
//
// When both polarities appear, expense wins: over-reporting an expense is
// safer for a budgeting tool than missing one.
func ExtractDirection(text string, set *keywords.Set) (models.TransactionType, bool) {
	_, expense := set.ExpenseMatch(text)
	_, income := set.IncomeMatch(text)

	switch {
	case expense:
		return models.TypeExpense, true
	case income:
		return models.TypeIncome, true
	default:
		return models.TypeExpense, false
	}
}
