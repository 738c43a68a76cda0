package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// AccountType is the general-ledger classification of an account.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeIncome    AccountType = "INCOME"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// Valid reports whether the account type is one of the enumerated GL types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}

	return false
}

// GLAccount represents a general-ledger account.
//
// Header accounts group child accounts and may not carry
// transactions directly.
type GLAccount struct {
	Model
	Name          string      `json:"name"`
	Type          AccountType `json:"type"`
	HeaderAccount bool        `json:"headerAccount"`
	Disabled      bool        `json:"disabled"`
}

var ErrGLAccountTypeInvalid = errors.New("the account type must be one of ASSET, LIABILITY, EQUITY, INCOME, EXPENSE")

// BeforeSave trims whitespace and verifies the account type.
func (a *GLAccount) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)

	if !a.Type.Valid() {
		return ErrGLAccountTypeInvalid
	}

	return nil
}
