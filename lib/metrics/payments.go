package metrics

import (
	"math"

	projectapimodels "hours-dashboard/models/api/project"
)

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// PaidAmount sums every payment that is not cancelled.
func PaidAmount(payments []projectapimodels.ExpensePayment) float64 {
	total := 0.0
	for _, payment := range payments {
		if payment.Status == projectapimodels.PaymentCancelled {
			continue
		}
		total += payment.Amount
	}
	return roundCents(total)
}

// PaymentStatus: paid once paid covers amount, partially paid while above zero.
func PaymentStatus(paid, amount float64) projectapimodels.ExpenseStatus {
	switch {
	case paid >= amount:
		return projectapimodels.ExpensePaid
	case paid > 0:
		return projectapimodels.ExpensePartiallyPaid
	}
	return projectapimodels.ExpenseUnpaid
}

// ApplyPayments recomputes the derived payment fields of expense.
func ApplyPayments(expense projectapimodels.Expense) projectapimodels.Expense {
	expense.PaidAmount = PaidAmount(expense.Payments)
	expense.RemainingAmount = roundCents(math.Max(expense.Amount-expense.PaidAmount, 0))
	expense.Status = PaymentStatus(expense.PaidAmount, expense.Amount)
	return expense
}

type PaymentProgressInfo struct {
	// Raw may exceed 100 on overpayment.
	Raw      float64
	Display  float64
	Overpaid bool
}

// PaymentProgress never fails: overpayment is reported through Overpaid and Display stays within [0,100].
func PaymentProgress(paid, amount float64) PaymentProgressInfo {
	if amount <= 0 {
		return PaymentProgressInfo{Raw: 100, Display: 100, Overpaid: paid > 0}
	}
	raw := paid / amount * 100
	return PaymentProgressInfo{
		Raw:      raw,
		Display:  math.Min(math.Max(raw, 0), 100),
		Overpaid: paid > amount,
	}
}

// ExpenseTotals aggregates the expenses panel of a project.
type ExpenseTotals struct {
	Amount    float64
	Paid      float64
	Remaining float64
}

func SumExpenses(expenses []projectapimodels.Expense) ExpenseTotals {
	var totals ExpenseTotals
	for _, expense := range expenses {
		expense = ApplyPayments(expense)
		totals.Amount += expense.Amount
		totals.Paid += expense.PaidAmount
		totals.Remaining += expense.RemainingAmount
	}
	totals.Amount = roundCents(totals.Amount)
	totals.Paid = roundCents(totals.Paid)
	totals.Remaining = roundCents(totals.Remaining)
	return totals
}
