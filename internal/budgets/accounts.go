package budgets

import (
	"errors"

	"github.com/glbudget/backend/internal/models"
	"gorm.io/gorm"
)

// AccountResolver loads GL accounts and enforces the binding rules that
// gate which accounts may be referenced by a budget.
type AccountResolver struct {
	db *gorm.DB
}

// NewAccountResolver returns a resolver reading through the given handle.
func NewAccountResolver(db *gorm.DB) AccountResolver {
	return AccountResolver{db: db}
}

// ResolveTyped fetches the account and verifies that it has the required
// type and is not a header account.
func (r AccountResolver) ResolveTyped(accountID uint64, required models.AccountType) (models.GLAccount, error) {
	var account models.GLAccount

	err := r.db.First(&account, accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
			return models.GLAccount{}, AccountNotFoundError{AccountID: accountID}
		}

		return models.GLAccount{}, err
	}

	if account.Type != required {
		return models.GLAccount{}, AccountTypeMismatchError{
			AccountID: accountID,
			Found:     account.Type,
			Required:  required,
		}
	}

	if account.HeaderAccount {
		return models.GLAccount{}, HeaderAccountError{AccountID: accountID}
	}

	return account, nil
}

// ResolveAsParent is the narrower legacy path used when account references
// are re-bound on update. It only ever accepts EXPENSE accounts, regardless
// of which budget field is being re-bound.
//
// This asymmetry with the create path is inherited behavior, see the open
// questions in DESIGN.md before aligning the two paths.
func (r AccountResolver) ResolveAsParent(accountID uint64) (models.GLAccount, error) {
	return r.ResolveTyped(accountID, models.AccountTypeExpense)
}
