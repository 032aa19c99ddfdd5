package projectapimodels

import (
	"strings"

	"hours-dashboard/models"

	"github.com/pkg/errors"
)

type RecurringInterval string

const (
	MonthlyInterval   RecurringInterval = "monthly"
	QuarterlyInterval RecurringInterval = "quarterly"
	YearlyInterval    RecurringInterval = "yearly"
)

func (i RecurringInterval) Validate() error {
	switch i {
	case MonthlyInterval, QuarterlyInterval, YearlyInterval:
		return nil
	}
	return errors.Errorf("unknown recurring interval %q", i)
}

type ExpenseStatus string

const (
	ExpenseUnpaid        ExpenseStatus = "unpaid"
	ExpensePartiallyPaid ExpenseStatus = "partially-paid"
	ExpensePaid          ExpenseStatus = "paid"
)

func (s ExpenseStatus) ToHuman() string {
	switch s {
	case ExpenseUnpaid:
		return "Unpaid"
	case ExpensePartiallyPaid:
		return "Partially paid"
	case ExpensePaid:
		return "Paid"
	}
	return string(s)
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentCancelled:
		return nil
	}
	return errors.Errorf("unknown payment status %q", s)
}

type PaymentMethod string

const (
	BankTransferMethod PaymentMethod = "bank-transfer"
	CreditCardMethod   PaymentMethod = "credit-card"
	CashMethod         PaymentMethod = "cash"
	OtherMethod        PaymentMethod = "other"
)

func (m PaymentMethod) Validate() error {
	switch m {
	case BankTransferMethod, CreditCardMethod, CashMethod, OtherMethod:
		return nil
	}
	return errors.Errorf("unknown payment method %q", m)
}

type ExpensePayment struct {
	ID            string        `json:"id"`
	ExpenseID     string        `json:"expenseId"`
	Amount        float64       `json:"amount"`
	Date          models.Date   `json:"date"`
	Status        PaymentStatus `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	Reference     string        `json:"reference,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// Expense carries PaidAmount, RemainingAmount and Status derived from Payments.
// They are recomputed with metrics.ApplyPayments whenever payments change.
type Expense struct {
	ID                string            `json:"id"`
	ProjectID         string            `json:"projectId"`
	Description       string            `json:"description"`
	Amount            float64           `json:"amount"`
	Category          string            `json:"category"`
	Date              models.Date       `json:"date"`
	IsRecurring       bool              `json:"isRecurring,omitempty"`
	RecurringInterval RecurringInterval `json:"recurringInterval,omitempty"`
	Payments          []ExpensePayment  `json:"payments,omitempty"`
	PaidAmount        float64           `json:"paidAmount"`
	RemainingAmount   float64           `json:"remainingAmount"`
	Status            ExpenseStatus     `json:"status"`
}

func (e Expense) Clone() Expense {
	c := e
	if e.Payments != nil {
		c.Payments = append([]ExpensePayment(nil), e.Payments...)
	}
	return c
}

func (e Expense) FindPayment(id string) (int, bool) {
	for i, payment := range e.Payments {
		if payment.ID == id {
			return i, true
		}
	}
	return -1, false
}

type NewExpense struct {
	Description       string            `json:"description"`
	Amount            float64           `json:"amount"`
	Category          string            `json:"category"`
	Date              models.Date       `json:"date"`
	IsRecurring       bool              `json:"isRecurring,omitempty"`
	RecurringInterval RecurringInterval `json:"recurringInterval,omitempty"`
}

func (r NewExpense) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("description is required")
	}
	if r.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if strings.TrimSpace(r.Category) == "" {
		return errors.New("category is required")
	}
	if r.Date.IsZero() {
		return errors.New("date is required")
	}
	if r.IsRecurring {
		return r.RecurringInterval.Validate()
	}
	return nil
}

func (r NewExpense) ToExpense(id, projectID string) Expense {
	interval := r.RecurringInterval
	if !r.IsRecurring {
		interval = ""
	}
	return Expense{
		ID:                id,
		ProjectID:         projectID,
		Description:       r.Description,
		Amount:            r.Amount,
		Category:          r.Category,
		Date:              r.Date,
		IsRecurring:       r.IsRecurring,
		RecurringInterval: interval,
	}
}

// ExpenseUpdate is a partial expense change; nil fields stay as they are.
type ExpenseUpdate struct {
	Description       *string            `json:"description,omitempty"`
	Amount            *float64           `json:"amount,omitempty"`
	Category          *string            `json:"category,omitempty"`
	Date              *models.Date       `json:"date,omitempty"`
	IsRecurring       *bool              `json:"isRecurring,omitempty"`
	RecurringInterval *RecurringInterval `json:"recurringInterval,omitempty"`
}

func (r ExpenseUpdate) Validate() error {
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		return errors.New("description must not be empty")
	}
	if r.Amount != nil && *r.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if r.Category != nil && strings.TrimSpace(*r.Category) == "" {
		return errors.New("category must not be empty")
	}
	if r.RecurringInterval != nil {
		return r.RecurringInterval.Validate()
	}
	return nil
}

func (r ExpenseUpdate) Apply(expense Expense) Expense {
	if r.Description != nil {
		expense.Description = *r.Description
	}
	if r.Amount != nil {
		expense.Amount = *r.Amount
	}
	if r.Category != nil {
		expense.Category = *r.Category
	}
	if r.Date != nil {
		expense.Date = *r.Date
	}
	if r.IsRecurring != nil {
		expense.IsRecurring = *r.IsRecurring
		if !expense.IsRecurring {
			expense.RecurringInterval = ""
		}
	}
	if r.RecurringInterval != nil && expense.IsRecurring {
		expense.RecurringInterval = *r.RecurringInterval
	}
	return expense
}

// PaymentData is the request body for recording a payment against an expense.
type PaymentData struct {
	Amount        float64       `json:"amount"`
	Date          models.Date   `json:"date"`
	Status        PaymentStatus `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	Reference     string        `json:"reference,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

func (r PaymentData) Validate() error {
	if r.Amount <= 0 {
		return errors.New("payment amount must be positive")
	}
	if r.Date.IsZero() {
		return errors.New("payment date is required")
	}
	if err := r.Status.Validate(); err != nil {
		return err
	}
	if r.PaymentMethod != "" {
		return r.PaymentMethod.Validate()
	}
	return nil
}

func (r PaymentData) ToPayment(id, expenseID string) ExpensePayment {
	return ExpensePayment{
		ID:            id,
		ExpenseID:     expenseID,
		Amount:        r.Amount,
		Date:          r.Date,
		Status:        r.Status,
		PaymentMethod: r.PaymentMethod,
		Reference:     r.Reference,
		Notes:         r.Notes,
	}
}

// PaymentUpdate is a partial payment change; nil fields stay as they are.
type PaymentUpdate struct {
	Amount        *float64       `json:"amount,omitempty"`
	Date          *models.Date   `json:"date,omitempty"`
	Status        *PaymentStatus `json:"status,omitempty"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
	Reference     *string        `json:"reference,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
}

func (r PaymentUpdate) Validate() error {
	if r.Amount != nil && *r.Amount <= 0 {
		return errors.New("payment amount must be positive")
	}
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	if r.PaymentMethod != nil {
		return r.PaymentMethod.Validate()
	}
	return nil
}

func (r PaymentUpdate) Apply(payment ExpensePayment) ExpensePayment {
	if r.Amount != nil {
		payment.Amount = *r.Amount
	}
	if r.Date != nil {
		payment.Date = *r.Date
	}
	if r.Status != nil {
		payment.Status = *r.Status
	}
	if r.PaymentMethod != nil {
		payment.PaymentMethod = *r.PaymentMethod
	}
	if r.Reference != nil {
		payment.Reference = *r.Reference
	}
	if r.Notes != nil {
		payment.Notes = *r.Notes
	}
	return payment
}
