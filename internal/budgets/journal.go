package budgets

import (
	"time"

	"github.com/glbudget/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetTransaction describes a budget amount movement to be posted as a
// balanced pair of journal entries.
type BudgetTransaction struct {
	BudgetID          uint64
	OfficeID          uint64
	CreditAccountID   uint64
	DebitAccountID    uint64
	CurrencyCode      string
	TransactionID     string
	TransactionDate   time.Time
	Amount            decimal.Decimal
	AccountingEnabled bool
	Reversed          bool
}

// Poster posts double-entry journal transactions.
type Poster struct {
	db *gorm.DB
}

// NewPoster returns a poster writing through the given handle.
func NewPoster(db *gorm.DB) Poster {
	return Poster{db: db}
}

// Post creates one CREDIT entry and one matching DEBIT entry for the
// transaction and returns the total credited amount.
//
// The debit always mirrors the amount that was actually credited, not the
// request amount, so the transaction stays balanced even if the credited
// amount was adjusted. Both entries are persisted atomically: if either
// fails, neither is kept.
//
// Posting is skipped entirely when accounting is disabled for the
// transaction or the amount is zero.
func (p Poster) Post(txn BudgetTransaction) (decimal.Decimal, error) {
	if !txn.AccountingEnabled {
		return decimal.Zero, nil
	}

	closure, err := models.LatestClosure(p.db, txn.OfficeID)
	if err != nil {
		return decimal.Zero, err
	}

	if closure != nil && !txn.TransactionDate.After(closure.ClosingDate) {
		return decimal.Zero, PeriodClosedError{
			OfficeID:        txn.OfficeID,
			ClosingDate:     closure.ClosingDate,
			TransactionDate: txn.TransactionDate,
		}
	}

	if txn.Amount.IsZero() {
		return decimal.Zero, nil
	}

	var credited decimal.Decimal

	err = p.db.Transaction(func(tx *gorm.DB) error {
		credited, err = postEntry(tx, txn, txn.CreditAccountID, models.JournalEntryTypeCredit, txn.Amount)
		if err != nil {
			return err
		}

		_, err = postEntry(tx, txn, txn.DebitAccountID, models.JournalEntryTypeDebit, credited)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}

	return credited, nil
}

// postEntry persists a single-sided entry. A reversal flips the direction
// of the entry instead of negating the amount.
func postEntry(tx *gorm.DB, txn BudgetTransaction, accountID uint64, entryType models.JournalEntryType, amount decimal.Decimal) (decimal.Decimal, error) {
	if txn.Reversed {
		if entryType == models.JournalEntryTypeCredit {
			entryType = models.JournalEntryTypeDebit
		} else {
			entryType = models.JournalEntryTypeCredit
		}
	}

	entry := models.JournalEntry{
		OfficeID:      txn.OfficeID,
		GLAccountID:   accountID,
		BudgetID:      txn.BudgetID,
		CurrencyCode:  txn.CurrencyCode,
		TransactionID: txn.TransactionID,
		EntryDate:     txn.TransactionDate,
		Type:          entryType,
		Amount:        amount,
		Reversed:      txn.Reversed,
	}

	err := tx.Create(&entry).Error
	if err != nil {
		return decimal.Zero, err
	}

	return entry.Amount, nil
}
