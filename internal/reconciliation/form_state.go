package reconciliation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Field names an input on the sales entry form
type Field string

const (
	FieldCard          Field = "card"
	FieldCash          Field = "cash"
	FieldQuick         Field = "quick"
	FieldFood          Field = "food"
	FieldDrinks        Field = "drinks"
	FieldUncategorized Field = "uncategorized"
)

// Category is one of the fixed sales buckets
type Category string

const (
	CategoryQuick         Category = "quick"
	CategoryFood          Category = "food"
	CategoryDrinks        Category = "drinks"
	CategoryUncategorized Category = "uncategorized"
)

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrUnknownField   = errors.New("unknown sales field")
	ErrSaveBlocked    = errors.New("sales totals do not balance")
	ErrPersistFailed  = errors.New("failed to save sales record")
)

// FormState is an immutable snapshot of the sales entry form.
// Every transition returns a new value; the receiver is never modified.
type FormState struct {
	FormID        int             `json:"form_id"`
	Card          decimal.Decimal `json:"card"`
	Cash          decimal.Decimal `json:"cash"`
	Quick         decimal.Decimal `json:"quick"`
	Food          decimal.Decimal `json:"food"`
	Drinks        decimal.Decimal `json:"drinks"`
	Uncategorized decimal.Decimal `json:"uncategorized"`
}

// Evaluation is everything the form needs to render after a change
type Evaluation struct {
	Balance  BalanceResult    `json:"balance"`
	Status   Status           `json:"status"`
	Message  string           `json:"message"`
	Autofill *decimal.Decimal `json:"autofill,omitempty"`
	CanSave  bool             `json:"can_save"`
}

// BlockedError is returned when a save is attempted while the gate is closed
type BlockedError struct {
	Evaluation Evaluation
}

func (e *BlockedError) Error() string {
	if !e.Evaluation.Balance.Gross.IsPositive() {
		return fmt.Sprintf("%s: gross total must be greater than zero", ErrSaveBlocked)
	}
	return fmt.Sprintf("%s: %s", ErrSaveBlocked, e.Evaluation.Message)
}

func (e *BlockedError) Is(target error) bool {
	return target == ErrSaveBlocked
}

// NewFormState returns a blank form
func NewFormState() FormState {
	return FormState{}
}

// Validate rejects negative inputs
func (s FormState) Validate() error {
	for field, amount := range s.amounts() {
		if amount.IsNegative() {
			return fmt.Errorf("%s: %w", field, ErrNegativeAmount)
		}
	}
	return nil
}

// WithAmount returns a copy of the form with one field replaced
func (s FormState) WithAmount(field Field, amount decimal.Decimal) (FormState, error) {
	if amount.IsNegative() {
		return s, fmt.Errorf("%s: %w", field, ErrNegativeAmount)
	}

	next := s
	switch field {
	case FieldCard:
		next.Card = amount
	case FieldCash:
		next.Cash = amount
	case FieldQuick:
		next.Quick = amount
	case FieldFood:
		next.Food = amount
	case FieldDrinks:
		next.Drinks = amount
	case FieldUncategorized:
		next.Uncategorized = amount
	default:
		return s, fmt.Errorf("%q: %w", field, ErrUnknownField)
	}
	return next, nil
}

// Balance computes the totals for the current inputs
func (s FormState) Balance() BalanceResult {
	return ComputeBalance(s.Card, s.Cash, s.Quick, s.Food, s.Drinks, s.Uncategorized)
}

// Evaluate recomputes the balancing state from scratch
func (s FormState) Evaluate() Evaluation {
	balance := s.Balance()
	eval := Evaluation{
		Balance: balance,
		Status:  balance.Status(),
		Message: Message(balance.Difference),
		CanSave: CanSave(balance.Gross, balance.CategorySum),
	}
	// a difference inside the tolerance can still keep the gate shut
	if !eval.CanSave && balance.Gross.IsPositive() && !balance.Difference.IsZero() {
		eval.Message = remainingMessage(balance.Difference)
	}

	if suggested, ok := SuggestAutofill(s.Uncategorized, balance.Difference); ok {
		eval.Autofill = &suggested
	}

	return eval
}

// ApplyAutofill writes the suggested amount into the uncategorized bucket.
// It reports false, leaving the form unchanged, when no suggestion is on offer.
func (s FormState) ApplyAutofill() (FormState, bool) {
	suggested, ok := SuggestAutofill(s.Uncategorized, s.Balance().Difference)
	if !ok {
		return s, false
	}

	next := s
	next.Uncategorized = suggested
	return next, true
}

// Reset clears all six inputs and moves to a fresh form id
func (s FormState) Reset() FormState {
	return FormState{FormID: s.FormID + 1}
}

// CategoryAmounts returns the category buckets keyed by category
func (s FormState) CategoryAmounts() map[Category]decimal.Decimal {
	return map[Category]decimal.Decimal{
		CategoryQuick:         s.Quick,
		CategoryFood:          s.Food,
		CategoryDrinks:        s.Drinks,
		CategoryUncategorized: s.Uncategorized,
	}
}

// Submit runs the save gate and hands the form to persist.
// On success the reset form is returned; on any failure the original inputs come back untouched.
func (s FormState) Submit(persist func(FormState) error) (FormState, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}

	eval := s.Evaluate()
	if !eval.CanSave {
		return s, &BlockedError{Evaluation: eval}
	}

	if err := persist(s); err != nil {
		return s, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}

	return s.Reset(), nil
}

func (s FormState) amounts() map[Field]decimal.Decimal {
	return map[Field]decimal.Decimal{
		FieldCard:          s.Card,
		FieldCash:          s.Cash,
		FieldQuick:         s.Quick,
		FieldFood:          s.Food,
		FieldDrinks:        s.Drinks,
		FieldUncategorized: s.Uncategorized,
	}
}
