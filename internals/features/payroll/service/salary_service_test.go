package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymku_backend/internals/features/payroll/model"
)

func categories() []model.SalaryCategory {
	return []model.SalaryCategory{
		{Category: "Base", Amount: decimal.NewFromInt(2500)},
		{Category: "HRA", Amount: decimal.NewFromInt(400)},
		{Category: "Transport", Amount: decimal.NewFromInt(100)},
	}
}

func TestSumCategories(t *testing.T) {
	assert.Equal(t, "3000.00", SumCategories(categories()).StringFixed(2))
	assert.True(t, SumCategories(nil).IsZero())
}

func TestRemoveCategory_TotalStaysSumOfRemaining(t *testing.T) {
	remaining, removed := RemoveCategory(categories(), "HRA")
	require.True(t, removed)
	require.Len(t, remaining, 2)
	assert.Equal(t, "2600.00", SumCategories(remaining).StringFixed(2))
}

func TestRemoveCategory_CaseInsensitive(t *testing.T) {
	remaining, removed := RemoveCategory(categories(), "  base ")
	require.True(t, removed)
	assert.Equal(t, "500.00", SumCategories(remaining).StringFixed(2))
}

func TestRemoveCategory_MissingLabel(t *testing.T) {
	remaining, removed := RemoveCategory(categories(), "Bonus")
	assert.False(t, removed)
	assert.Len(t, remaining, 3)
}

func TestRemoveCategory_LastLeavesEmpty(t *testing.T) {
	one := []model.SalaryCategory{{Category: "Base", Amount: decimal.NewFromInt(100)}}
	remaining, removed := RemoveCategory(one, "Base")
	require.True(t, removed)
	// An empty remainder is the controller's cue to delete the whole
	// assignment rather than persist an empty list.
	assert.Empty(t, remaining)
}
