package v1

import (
	"time"

	"github.com/glbudget/backend/internal/budgets"
	"github.com/glbudget/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BudgetEditable contains the fields clients may set on a budget. All
// fields are pointers so that absent fields can be told apart from zero
// values when computing partial updates.
type BudgetEditable struct {
	OfficeID           *uint64          `json:"officeId" example:"1"`                                            // The office this budget belongs to, immutable after creation
	Name               *string          `json:"name" example:"Field operations 2026"`                            // Name of the budget, 1 to 45 characters
	Description        *string          `json:"description" example:"Operating budget for the northern branch"`  // Optional description, up to 500 characters
	Amount             *decimal.Decimal `json:"amount" example:"500000" minimum:"0"`                             // The budgeted amount
	Disabled           *bool            `json:"disabled" example:"false"`                                        // Disabled budgets do not count against the uniqueness rule
	FromDate           *time.Time       `json:"fromDate" example:"2026-01-01T00:00:00Z"`                         // Start of the budgeted period
	ToDate             *time.Time       `json:"toDate" example:"2026-12-31T00:00:00Z"`                           // End of the budgeted period
	CreateDate         *time.Time       `json:"createDate" example:"2026-01-01T00:00:00Z"`                       // Date the journal transaction is posted under
	Year               *uint            `json:"year" example:"2026" minimum:"1"`                                 // The budget year
	ExpenseAccountID   *uint64          `json:"expenseAccountId" example:"4" minimum:"1"`                        // GL account of type EXPENSE
	AssetAccountID     *uint64          `json:"assetAccountId" example:"2" minimum:"1"`                          // GL account of type ASSET, unique together with year
	CashAccountID      *uint64          `json:"cashAccountId" example:"3" minimum:"1"`                           // GL account of type ASSET
	LiabilityAccountID *uint64          `json:"liabilityAccountId" example:"5" minimum:"1"`                      // GL account of type LIABILITY
}

// payload returns the core representation of the editable fields.
func (editable BudgetEditable) payload() budgets.Payload {
	return budgets.Payload{
		OfficeID:           editable.OfficeID,
		Name:               editable.Name,
		Description:        editable.Description,
		Amount:             editable.Amount,
		Disabled:           editable.Disabled,
		FromDate:           editable.FromDate,
		ToDate:             editable.ToDate,
		CreateDate:         editable.CreateDate,
		Year:               editable.Year,
		ExpenseAccountID:   editable.ExpenseAccountID,
		AssetAccountID:     editable.AssetAccountID,
		CashAccountID:      editable.CashAccountID,
		LiabilityAccountID: editable.LiabilityAccountID,
	}
}

type BudgetResponse struct {
	Data          *models.Budget    `json:"data"`                    // The budget
	ChangedFields budgets.ChangeSet `json:"changedFields,omitempty"` // Fields modified by the operation, with their new values
	Error         *string           `json:"error"`                   // The error, if any occurred
}

type BudgetListResponse struct {
	Data       []models.Budget `json:"data"`       // List of budgets
	Error      *string         `json:"error"`      // The error, if any occurred
	Pagination *Pagination     `json:"pagination"` // Pagination information
}

type BudgetDeleteResponse struct {
	ID    uint64  `json:"id"`    // ID of the deleted budget
	Error *string `json:"error"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	OfficeID uint64 `form:"office"`                     // By office ID
	Year     uint   `form:"year"`                       // By budget year
	Disabled bool   `form:"disabled"`                   // Is the budget disabled?
	Name     string `form:"name" filterField:"false"`   // By name
	Search   string `form:"search" filterField:"false"` // Search for this text in name and description
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		OfficeID: f.OfficeID,
		Year:     f.Year,
		Disabled: f.Disabled,
	}
}
