package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/glbudget/backend/internal/controllers/v1"
	"github.com/glbudget/backend/internal/models"
	"github.com/glbudget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestJournalEntriesList() {
	budget := createTestBudget(suite.T(), testBudgetEditable(suite.T(), 2026))

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/journal-entries?budget=%d", budget.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.JournalEntryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)

	credit, debit := response.Data[0], response.Data[1]
	assert.Equal(suite.T(), models.JournalEntryTypeCredit, credit.Type)
	assert.Equal(suite.T(), models.JournalEntryTypeDebit, debit.Type)
	assert.Equal(suite.T(), credit.TransactionID, debit.TransactionID)
	assert.True(suite.T(), credit.Amount.Equal(debit.Amount))
}

func (suite *TestSuiteStandard) TestJournalEntriesFilter() {
	b1 := createTestBudget(suite.T(), testBudgetEditable(suite.T(), 2026))
	b2 := createTestBudget(suite.T(), testBudgetEditable(suite.T(), 2027))

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"First budget", fmt.Sprintf("budget=%d", b1.Data.ID), 2},
		{"Second budget office", fmt.Sprintf("office=%d", b2.Data.OfficeID), 2},
		{"Unknown budget", "budget=1337", 0},
		{"No filter", "", 4},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/journal-entries?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.JournalEntryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestJournalEntriesReadOnly() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/journal-entries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}
