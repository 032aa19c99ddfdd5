package projectapimodels

import (
	"github.com/pkg/errors"
)

type ProjectType string

const (
	TimeBasedType  ProjectType = "time-based"  // billed by hours from an allocated pool
	FixedPriceType ProjectType = "fixed-price" // billed against a fixed budget
)

func (t ProjectType) Validate() error {
	switch t {
	case TimeBasedType, FixedPriceType:
		return nil
	}
	return errors.Errorf("unknown project type %q", t)
}

// Billing is the type-dependent part of a project. Only TimeBased and
// FixedPrice implement it, so hour fields never exist on a fixed-price
// project and a budget never exists on a time-based one.
type Billing interface {
	Type() ProjectType
	isBilling()
}

type TimeBased struct {
	TotalHours float64
	UsedHours  float64
}

func (TimeBased) Type() ProjectType { return TimeBasedType }
func (TimeBased) isBilling()        {}

func (b TimeBased) RemainingHours() float64 {
	return b.TotalHours - b.UsedHours
}

type FixedPrice struct {
	Budget float64
}

func (FixedPrice) Type() ProjectType { return FixedPriceType }
func (FixedPrice) isBilling()        {}

func validateBilling(b Billing) error {
	switch v := b.(type) {
	case TimeBased:
		if v.TotalHours <= 0 {
			return errors.New("total hours must be positive")
		}
		if v.UsedHours < 0 {
			return errors.New("used hours must not be negative")
		}
	case FixedPrice:
		if v.Budget <= 0 {
			return errors.New("budget must be positive")
		}
	case nil:
		return errors.New("project type is required")
	default:
		return errors.Errorf("unsupported billing %T", b)
	}
	return nil
}

// billingFields is the flat wire form shared by every payload carrying a Billing.
type billingFields struct {
	Type       ProjectType `json:"type,omitempty"`
	TotalHours *float64    `json:"totalHours,omitempty"`
	UsedHours  *float64    `json:"usedHours,omitempty"`
	Budget     *float64    `json:"budget,omitempty"`
}

func flattenBilling(b Billing) (billingFields, error) {
	switch v := b.(type) {
	case TimeBased:
		total, used := v.TotalHours, v.UsedHours
		return billingFields{Type: TimeBasedType, TotalHours: &total, UsedHours: &used}, nil
	case FixedPrice:
		budget := v.Budget
		return billingFields{Type: FixedPriceType, Budget: &budget}, nil
	case nil:
		return billingFields{}, nil
	default:
		return billingFields{}, errors.Errorf("unsupported billing %T", b)
	}
}

// toBilling reads only the fields that belong to the declared type.
// An empty type yields a nil Billing.
func (f billingFields) toBilling() (Billing, error) {
	switch f.Type {
	case "":
		return nil, nil
	case TimeBasedType:
		b := TimeBased{}
		if f.TotalHours != nil {
			b.TotalHours = *f.TotalHours
		}
		if f.UsedHours != nil {
			b.UsedHours = *f.UsedHours
		}
		return b, nil
	case FixedPriceType:
		b := FixedPrice{}
		if f.Budget != nil {
			b.Budget = *f.Budget
		}
		return b, nil
	}
	return nil, errors.Errorf("unknown project type %q", f.Type)
}
