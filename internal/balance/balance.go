// Package balance derives the annual maintenance spending ceiling and the
// remaining balance for a vehicle from its reference value and its
// maintenance order history.
package balance

import (
	"sort"
	"time"

	"github.com/cavalaria/backend/internal/currency"
	"github.com/cavalaria/backend/internal/models"
	"github.com/cavalaria/backend/internal/types"
	"github.com/shopspring/decimal"
)

// The spending limits are fractions of the reference value: the rolling
// twelve month ceiling is 70%, the informational single-order cap is 20%.
var (
	annualLimitRate   = decimal.New(70, -2)
	perOrderLimitRate = decimal.New(20, -2)
	oneHundred        = decimal.New(100, 0)
)

// Summary is the result of a balance calculation. It is always computed on
// demand and never persisted.
type Summary struct {
	ReferenceValue decimal.Decimal `json:"referenceValue" example:"100000"` // The assessed vehicle value
	AnnualLimit    decimal.Decimal `json:"annualLimit" example:"70000"`     // 70% of the reference value
	PerOrderLimit  decimal.Decimal `json:"perOrderLimit" example:"20000"`   // 20% of the reference value, informational single-order cap
	Spent          decimal.Decimal `json:"spent" example:"10000"`           // Sum of all maintenance orders in the trailing twelve months
	Remaining      decimal.Decimal `json:"remaining" example:"60000"`       // The annual limit minus spend, never negative
	PercentUsed    decimal.Decimal `json:"percentUsed" example:"14.29"`     // Spend as a percentage of the annual limit, may exceed 100
	Months         []MonthSpend    `json:"months"`                          // Spend per calendar month inside the window
}

// MonthSpend is the maintenance spend of one calendar month.
type MonthSpend struct {
	Month types.Month     `json:"month" example:"2024-03-01T00:00:00Z"`
	Spent decimal.Decimal `json:"spent" example:"1532.99"`
}

// Window returns the orders dated inside the trailing twelve month window
// ending at now.
//
// The window is inclusive on both ends and compares calendar days only: an
// order dated exactly twelve months before now is inside, one dated twelve
// months and a day before is not. The start boundary uses Go's AddDate
// normalization for short months.
func Window(orders []models.MaintenanceOrder, now time.Time) []models.MaintenanceOrder {
	start := dateOnly(now.AddDate(0, -12, 0))
	end := dateOnly(now)

	inWindow := make([]models.MaintenanceOrder, 0, len(orders))
	for _, order := range orders {
		date := dateOnly(order.OrderDate)
		if date.Before(start) || date.After(end) {
			continue
		}
		inWindow = append(inWindow, order)
	}

	return inWindow
}

// Calculate computes the balance summary for a reference value in centavos
// and the orders inside the spending window.
//
// It is a pure function and cannot fail: a zero reference value yields a
// zero annual limit and a percentage of zero, overspending yields a
// remaining balance of zero and a percentage above 100.
func Calculate(valueCents int64, ordersInWindow []models.MaintenanceOrder) Summary {
	referenceValue := currency.CentsToDecimal(valueCents)
	annualLimit := referenceValue.Mul(annualLimitRate)
	perOrderLimit := referenceValue.Mul(perOrderLimitRate)

	spent := decimal.Zero
	monthly := make(map[types.Month]decimal.Decimal)
	for _, order := range ordersInWindow {
		spent = spent.Add(order.Amount)

		month := types.MonthOf(order.OrderDate)
		monthly[month] = monthly[month].Add(order.Amount)
	}

	remaining := annualLimit.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	percentUsed := decimal.Zero
	if annualLimit.IsPositive() {
		percentUsed = spent.Div(annualLimit).Mul(oneHundred)
	}

	months := make([]MonthSpend, 0, len(monthly))
	for month, amount := range monthly {
		months = append(months, MonthSpend{Month: month, Spent: amount})
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month.Before(months[j].Month)
	})

	return Summary{
		ReferenceValue: referenceValue,
		AnnualLimit:    annualLimit,
		PerOrderLimit:  perOrderLimit,
		Spent:          spent,
		Remaining:      remaining,
		PercentUsed:    percentUsed,
		Months:         months,
	}
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
