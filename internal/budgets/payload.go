package budgets

import (
	"strings"
	"time"

	"github.com/glbudget/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Payload carries the client-supplied budget fields for create and update
// operations. Pointer fields distinguish absent values from zero values.
type Payload struct {
	OfficeID           *uint64          `json:"officeId"`
	Name               *string          `json:"name"`
	Description        *string          `json:"description"`
	Amount             *decimal.Decimal `json:"amount"`
	Disabled           *bool            `json:"disabled"`
	FromDate           *time.Time       `json:"fromDate"`
	ToDate             *time.Time       `json:"toDate"`
	CreateDate         *time.Time       `json:"createDate"`
	Year               *uint            `json:"year"`
	ExpenseAccountID   *uint64          `json:"expenseAccountId"`
	AssetAccountID     *uint64          `json:"assetAccountId"`
	CashAccountID      *uint64          `json:"cashAccountId"`
	LiabilityAccountID *uint64          `json:"liabilityAccountId"`
}

// ChangeSet maps the JSON name of every modified field to its new value.
// It is both the write instruction for the store and the "what changed"
// result returned to the caller.
type ChangeSet map[string]any

// model builds the budget to persist on creation. Validation guarantees
// that all referenced fields are present.
func (p Payload) model() models.Budget {
	description := ""
	if p.Description != nil {
		description = *p.Description
	}

	return models.Budget{
		OfficeID:           *p.OfficeID,
		Name:               *p.Name,
		Description:        description,
		Amount:             *p.Amount,
		Disabled:           *p.Disabled,
		FromDate:           *p.FromDate,
		ToDate:             *p.ToDate,
		CreateDate:         *p.CreateDate,
		Year:               *p.Year,
		ExpenseAccountID:   *p.ExpenseAccountID,
		AssetAccountID:     *p.AssetAccountID,
		CashAccountID:      *p.CashAccountID,
		LiabilityAccountID: *p.LiabilityAccountID,
	}
}

// apply compares the payload to the stored budget field by field and writes
// every differing value to the budget and the returned change set.
//
// The re-bindable account references (asset, expense, liability) are only
// recorded in the change set here. The caller must re-validate the new
// account before swapping the reference in, see Service.Update.
func (p Payload) apply(b *models.Budget) ChangeSet {
	changes := ChangeSet{}

	if p.Name != nil {
		if name := strings.TrimSpace(*p.Name); name != b.Name {
			b.Name = name
			changes["name"] = name
		}
	}

	if p.Description != nil {
		if description := strings.TrimSpace(*p.Description); description != b.Description {
			b.Description = description
			changes["description"] = description
		}
	}

	if p.Amount != nil && !p.Amount.Equal(b.Amount) {
		b.Amount = *p.Amount
		changes["amount"] = *p.Amount
	}

	if p.Disabled != nil && *p.Disabled != b.Disabled {
		b.Disabled = *p.Disabled
		changes["disabled"] = *p.Disabled
	}

	if p.FromDate != nil && !p.FromDate.In(time.UTC).Equal(b.FromDate) {
		b.FromDate = p.FromDate.In(time.UTC)
		changes["fromDate"] = b.FromDate
	}

	if p.ToDate != nil && !p.ToDate.In(time.UTC).Equal(b.ToDate) {
		b.ToDate = p.ToDate.In(time.UTC)
		changes["toDate"] = b.ToDate
	}

	if p.CreateDate != nil && !p.CreateDate.In(time.UTC).Equal(b.CreateDate) {
		b.CreateDate = p.CreateDate.In(time.UTC)
		changes["createDate"] = b.CreateDate
	}

	if p.Year != nil && *p.Year != b.Year {
		b.Year = *p.Year
		changes["year"] = *p.Year
	}

	// Account references are not applied here, only recorded.
	if p.AssetAccountID != nil && *p.AssetAccountID != b.AssetAccountID {
		changes["assetAccountId"] = *p.AssetAccountID
	}

	if p.ExpenseAccountID != nil && *p.ExpenseAccountID != b.ExpenseAccountID {
		changes["expenseAccountId"] = *p.ExpenseAccountID
	}

	if p.LiabilityAccountID != nil && *p.LiabilityAccountID != b.LiabilityAccountID {
		changes["liabilityAccountId"] = *p.LiabilityAccountID
	}

	return changes
}
