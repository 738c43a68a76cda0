package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JournalEntryType is the direction of a single-sided journal entry.
type JournalEntryType string

const (
	JournalEntryTypeDebit  JournalEntryType = "DEBIT"
	JournalEntryTypeCredit JournalEntryType = "CREDIT"
)

// JournalEntry is a single-sided posting. Balanced double-entry transactions
// consist of entries sharing a transaction id whose credit and debit sums
// are equal.
type JournalEntry struct {
	Model
	OfficeID      uint64           `json:"officeId"`
	GLAccountID   uint64           `json:"glAccountId"`
	BudgetID      uint64           `json:"budgetId"`
	CurrencyCode  string           `json:"currencyCode"`
	TransactionID string           `json:"transactionId" gorm:"index"`
	EntryDate     time.Time        `json:"entryDate"`
	Type          JournalEntryType `json:"type"`
	Amount        decimal.Decimal  `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Reversed      bool             `json:"reversed"`
}

// BeforeSave sets the timezone for the entry date to UTC.
func (e *JournalEntry) BeforeSave(_ *gorm.DB) error {
	e.EntryDate = e.EntryDate.In(time.UTC)
	return nil
}

func (e *JournalEntry) AfterFind(tx *gorm.DB) error {
	_ = e.Model.AfterFind(tx)

	e.EntryDate = e.EntryDate.In(time.UTC)
	return nil
}

// TransactionSums returns the credit and debit sums for all journal entries
// sharing the transaction id. For every successfully posted transaction the
// two sums are equal.
func TransactionSums(db *gorm.DB, transactionID string) (credits, debits decimal.Decimal, err error) {
	var creditSum, debitSum decimal.NullDecimal

	err = db.Table("journal_entries").
		Where(&JournalEntry{TransactionID: transactionID, Type: JournalEntryTypeCredit}).
		Select("SUM(amount)").
		Row().
		Scan(&creditSum)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("summing credit entries for transaction %q failed: %w", transactionID, err)
	}

	err = db.Table("journal_entries").
		Where(&JournalEntry{TransactionID: transactionID, Type: JournalEntryTypeDebit}).
		Select("SUM(amount)").
		Row().
		Scan(&debitSum)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("summing debit entries for transaction %q failed: %w", transactionID, err)
	}

	return creditSum.Decimal, debitSum.Decimal, nil
}
