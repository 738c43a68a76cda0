package models_test

import (
	"time"

	"github.com/glbudget/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionSums() {
	office := suite.createTestOffice(models.Office{})
	cash := suite.createTestGLAccount(models.GLAccount{Type: models.AccountTypeAsset})
	asset := suite.createTestGLAccount(models.GLAccount{Type: models.AccountTypeAsset})

	entryDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_ = suite.createTestJournalEntry(models.JournalEntry{
		OfficeID:      office.ID,
		GLAccountID:   cash.ID,
		CurrencyCode:  "KE",
		TransactionID: "18d1a2b3c4",
		EntryDate:     entryDate,
		Type:          models.JournalEntryTypeCredit,
		Amount:        decimal.NewFromFloat(500),
	})

	_ = suite.createTestJournalEntry(models.JournalEntry{
		OfficeID:      office.ID,
		GLAccountID:   asset.ID,
		CurrencyCode:  "KE",
		TransactionID: "18d1a2b3c4",
		EntryDate:     entryDate,
		Type:          models.JournalEntryTypeDebit,
		Amount:        decimal.NewFromFloat(500),
	})

	// An entry of an unrelated transaction must not be summed
	_ = suite.createTestJournalEntry(models.JournalEntry{
		OfficeID:      office.ID,
		GLAccountID:   cash.ID,
		CurrencyCode:  "KE",
		TransactionID: "ffffffffff",
		EntryDate:     entryDate,
		Type:          models.JournalEntryTypeCredit,
		Amount:        decimal.NewFromFloat(42),
	})

	credits, debits, err := models.TransactionSums(models.DB, "18d1a2b3c4")

	suite.Assert().Nil(err)
	suite.Assert().True(credits.Equal(decimal.NewFromFloat(500)), "Credit sum is %s", credits)
	suite.Assert().True(debits.Equal(decimal.NewFromFloat(500)), "Debit sum is %s", debits)
	suite.Assert().True(credits.Equal(debits))
}

func (suite *TestSuiteStandard) TestJournalEntryDateUTC() {
	office := suite.createTestOffice(models.Office{})
	cash := suite.createTestGLAccount(models.GLAccount{Type: models.AccountTypeAsset})

	tz := time.FixedZone("UTC+2", 2*60*60)
	entry := suite.createTestJournalEntry(models.JournalEntry{
		OfficeID:      office.ID,
		GLAccountID:   cash.ID,
		CurrencyCode:  "KE",
		TransactionID: "18d1a2b3c4",
		EntryDate:     time.Date(2026, 1, 1, 2, 0, 0, 0, tz),
		Type:          models.JournalEntryTypeCredit,
		Amount:        decimal.NewFromFloat(500),
	})

	var loaded models.JournalEntry
	err := models.DB.First(&loaded, entry.ID).Error
	suite.Assert().Nil(err)

	suite.Assert().Equal(time.UTC, loaded.EntryDate.Location())
	suite.Assert().True(loaded.EntryDate.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}
