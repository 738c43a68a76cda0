package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget represents the budget for a GL asset account in a specific year.
//
// The four account references are plain foreign-key ids. Attributes of the
// referenced accounts are never traversed implicitly; callers resolve them
// through the budgets.AccountResolver when they are needed.
type Budget struct {
	Model
	OfficeID           uint64          `json:"officeId"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	Amount             decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Disabled           bool            `json:"disabled"`
	FromDate           time.Time       `json:"fromDate"`
	ToDate             time.Time       `json:"toDate"`
	CreateDate         time.Time       `json:"createDate"`
	Year               uint            `json:"year"`
	ExpenseAccountID   uint64          `json:"expenseAccountId"`
	AssetAccountID     uint64          `json:"assetAccountId"`
	CashAccountID      uint64          `json:"cashAccountId"`
	LiabilityAccountID uint64          `json:"liabilityAccountId"`
}

var ErrBudgetAssetYearNotUnique = errors.New("a budget already exists for this asset account and year")

// BeforeSave trims whitespace from all strings and stores dates in UTC.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Description = strings.TrimSpace(b.Description)

	b.FromDate = b.FromDate.In(time.UTC)
	b.ToDate = b.ToDate.In(time.UTC)
	b.CreateDate = b.CreateDate.In(time.UTC)

	return nil
}

func (b *Budget) AfterFind(tx *gorm.DB) error {
	_ = b.Model.AfterFind(tx)

	b.FromDate = b.FromDate.In(time.UTC)
	b.ToDate = b.ToDate.In(time.UTC)
	b.CreateDate = b.CreateDate.In(time.UTC)

	return nil
}
