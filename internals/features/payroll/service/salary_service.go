package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"gymku_backend/internals/features/payroll/model"
)

// SumCategories derives the gross total of an assignment.
func SumCategories(categories []model.SalaryCategory) decimal.Decimal {
	total := decimal.Zero
	for _, cat := range categories {
		total = total.Add(cat.Amount)
	}
	return total
}

// RemoveCategory drops the first category matching the label
// (case-insensitive). Returns the remaining list and whether a category was
// removed. Callers delete the whole assignment when nothing remains.
func RemoveCategory(categories []model.SalaryCategory, label string) ([]model.SalaryCategory, bool) {
	label = strings.ToLower(strings.TrimSpace(label))

	for i, cat := range categories {
		if strings.ToLower(strings.TrimSpace(cat.Category)) == label {
			remaining := make([]model.SalaryCategory, 0, len(categories)-1)
			remaining = append(remaining, categories[:i]...)
			remaining = append(remaining, categories[i+1:]...)
			return remaining, true
		}
	}
	return categories, false
}
