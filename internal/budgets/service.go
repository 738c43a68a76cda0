package budgets

import (
	"errors"
	"fmt"
	"time"

	"github.com/glbudget/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// budgetCurrencyCode is the currency recorded on budget journal entries.
const budgetCurrencyCode = "KE"

// Service is the write path for budgets. It orchestrates validation,
// account resolution, the uniqueness check, persistence and journal
// posting. Every operation runs inside a single database transaction,
// a failure at any step rolls back all writes of that call.
type Service struct {
	db *gorm.DB
}

// NewService returns a budget service using the given database.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// transaction runs fn in a database transaction. Errors raised by Begin
// bypass the store callbacks, so the driver failure rewrite of the general
// callback is repeated here.
func (s *Service) transaction(fn func(tx *gorm.DB) error) error {
	err := s.db.Transaction(fn)
	if err != nil && err.Error() == "sql: database is closed" {
		log.Error().Msgf("%T: %v", err, err)
		return models.ErrGeneral
	}

	return err
}

// Create validates and persists a new budget and posts the double-entry
// journal transaction for its amount: a credit to the cash account and a
// matching debit to the asset account.
//
// actingUserID identifies the user the operation is performed by. It is
// passed explicitly because it becomes part of the journal transaction id.
func (s *Service) Create(payload Payload, actingUserID uint64) (models.Budget, error) {
	if errs := payload.validate(modeCreate); len(errs) > 0 {
		return models.Budget{}, errs
	}

	var budget models.Budget

	err := s.transaction(func(tx *gorm.DB) error {
		var office models.Office
		err := tx.First(&office, *payload.OfficeID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
				return OfficeNotFoundError{OfficeID: *payload.OfficeID}
			}

			return err
		}

		resolver := NewAccountResolver(tx)

		_, err = resolver.ResolveTyped(*payload.ExpenseAccountID, models.AccountTypeExpense)
		if err != nil {
			return err
		}

		_, err = resolver.ResolveTyped(*payload.CashAccountID, models.AccountTypeAsset)
		if err != nil {
			return err
		}

		_, err = resolver.ResolveTyped(*payload.AssetAccountID, models.AccountTypeAsset)
		if err != nil {
			return err
		}

		_, err = resolver.ResolveTyped(*payload.LiabilityAccountID, models.AccountTypeLiability)
		if err != nil {
			return err
		}

		// The check and the insert below are separate statements. The
		// partial unique index on (asset_account_id, year) catches
		// concurrent creations that pass the check simultaneously.
		existing, err := findByAssetAccountAndYear(tx, *payload.AssetAccountID, *payload.Year)
		if err != nil {
			return err
		}

		if existing != nil {
			return BudgetExistsError{AssetAccountID: *payload.AssetAccountID, Year: *payload.Year}
		}

		budget = payload.model()
		err = tx.Create(&budget).Error
		if err != nil {
			return err
		}

		transactionID := newTransactionID(actingUserID, budget.OfficeID)

		credited, err := NewPoster(tx).Post(BudgetTransaction{
			BudgetID:          budget.ID,
			OfficeID:          budget.OfficeID,
			CreditAccountID:   budget.CashAccountID,
			DebitAccountID:    budget.AssetAccountID,
			CurrencyCode:      budgetCurrencyCode,
			TransactionID:     transactionID,
			TransactionDate:   budget.CreateDate,
			Amount:            budget.Amount,
			AccountingEnabled: true,
		})
		if err != nil {
			return err
		}

		log.Debug().
			Uint64("budget", budget.ID).
			Str("transaction", transactionID).
			Str("credited", credited.String()).
			Msg("budget created")

		return nil
	})
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// Update applies a partial update to an existing budget. Only fields whose
// value differs from the stored one are written; the returned change set
// names exactly those fields.
//
// Re-bound account references are validated through ResolveAsParent before
// they are swapped in. Update never re-checks uniqueness and never posts
// journal entries.
func (s *Service) Update(id uint64, payload Payload) (models.Budget, ChangeSet, error) {
	if errs := payload.validate(modeUpdate); len(errs) > 0 {
		return models.Budget{}, nil, errs
	}

	var budget models.Budget
	var changes ChangeSet

	err := s.transaction(func(tx *gorm.DB) error {
		err := tx.First(&budget, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
				return ErrBudgetNotFound
			}

			return err
		}

		changes = payload.apply(&budget)

		resolver := NewAccountResolver(tx)

		if _, ok := changes["assetAccountId"]; ok {
			_, err := resolver.ResolveAsParent(*payload.AssetAccountID)
			if err != nil {
				return err
			}

			budget.AssetAccountID = *payload.AssetAccountID
		}

		if _, ok := changes["expenseAccountId"]; ok {
			_, err := resolver.ResolveAsParent(*payload.ExpenseAccountID)
			if err != nil {
				return err
			}

			budget.ExpenseAccountID = *payload.ExpenseAccountID
		}

		if _, ok := changes["liabilityAccountId"]; ok {
			_, err := resolver.ResolveAsParent(*payload.LiabilityAccountID)
			if err != nil {
				return err
			}

			budget.LiabilityAccountID = *payload.LiabilityAccountID
		}

		if len(changes) == 0 {
			return nil
		}

		return tx.Save(&budget).Error
	})
	if err != nil {
		return models.Budget{}, nil, err
	}

	return budget, changes, nil
}

// Delete removes the budget. The delete is hard, journal history referring
// to the budget is kept.
func (s *Service) Delete(id uint64) error {
	return s.transaction(func(tx *gorm.DB) error {
		var budget models.Budget

		err := tx.First(&budget, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
				return ErrBudgetNotFound
			}

			return err
		}

		return tx.Delete(&budget).Error
	})
}

// findByAssetAccountAndYear returns the non-disabled budget bound to the
// asset account in the given year, or nil when there is none.
func findByAssetAccountAndYear(db *gorm.DB, assetAccountID uint64, year uint) (*models.Budget, error) {
	var budget models.Budget

	err := db.
		Where("asset_account_id = ? AND year = ? AND NOT disabled", assetAccountID, year).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &budget, nil
}

// newTransactionID derives a journal transaction id from the current time,
// the acting user and the office, hex-encoded.
func newTransactionID(actingUserID, officeID uint64) string {
	return fmt.Sprintf("%x%x%x", time.Now().UnixMilli(), actingUserID, officeID)
}
