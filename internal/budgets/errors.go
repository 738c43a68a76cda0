package budgets

import (
	"errors"
	"fmt"
	"time"

	"github.com/glbudget/backend/internal/models"
)

var ErrBudgetNotFound = errors.New("there is no budget matching your query")

// OfficeNotFoundError is returned when the office a budget is created
// for does not exist.
type OfficeNotFoundError struct {
	OfficeID uint64
}

func (e OfficeNotFoundError) Error() string {
	return fmt.Sprintf("office with id %d does not exist", e.OfficeID)
}

// AccountNotFoundError is returned when a referenced GL account
// does not resolve.
type AccountNotFoundError struct {
	AccountID uint64
}

func (e AccountNotFoundError) Error() string {
	return fmt.Sprintf("GL account with id %d does not exist", e.AccountID)
}

// AccountTypeMismatchError is returned when a referenced GL account does
// not have the type the budget field requires.
type AccountTypeMismatchError struct {
	AccountID uint64
	Found     models.AccountType
	Required  models.AccountType
}

func (e AccountTypeMismatchError) Error() string {
	return fmt.Sprintf("GL account %d is of type %s, but an account of type %s is required", e.AccountID, e.Found, e.Required)
}

// HeaderAccountError is returned when a referenced GL account is a header
// account. Header accounts group child accounts and may not be bound to
// budgets or carry transactions.
type HeaderAccountError struct {
	AccountID uint64
}

func (e HeaderAccountError) Error() string {
	return fmt.Sprintf("GL account %d is a header account and cannot be used for budgets", e.AccountID)
}

// BudgetExistsError is returned when a budget for the asset account and
// year combination already exists.
type BudgetExistsError struct {
	AssetAccountID uint64
	Year           uint
}

func (e BudgetExistsError) Error() string {
	return fmt.Sprintf("a budget for asset account %d and year %d already exists", e.AssetAccountID, e.Year)
}

// PeriodClosedError is returned when a journal entry is dated on or before
// the latest accounting closure of its office.
type PeriodClosedError struct {
	OfficeID        uint64
	ClosingDate     time.Time
	TransactionDate time.Time
}

func (e PeriodClosedError) Error() string {
	return fmt.Sprintf("the accounting period of office %d is closed through %s, entries dated %s are not accepted",
		e.OfficeID, e.ClosingDate.Format("2006-01-02"), e.TransactionDate.Format("2006-01-02"))
}
