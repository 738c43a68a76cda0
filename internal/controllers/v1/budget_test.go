package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/glbudget/backend/internal/controllers/v1"
	"github.com/glbudget/backend/internal/models"
	"github.com/glbudget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	budget := createTestBudget(suite.T(), testBudgetEditable(suite.T(), 2026))

	tests := []struct {
		name   string
		id     string // path segment at the budgets endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No budget with this ID", "1337", http.StatusNotFound},
		{"Not parseable as ID", "NotAnInteger", http.StatusBadRequest},
		{"Budget exists", fmt.Sprint(budget.Data.ID), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/budgets/%s", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	editable := testBudgetEditable(suite.T(), 2026)
	budget := createTestBudget(suite.T(), editable)

	require.NotNil(suite.T(), budget.Data)
	assert.Equal(suite.T(), *editable.Name, budget.Data.Name)
	assert.True(suite.T(), budget.Data.Amount.Equal(decimal.NewFromFloat(500)))

	// The journal transaction for the amount must have been posted
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/journal-entries?budget=%d", budget.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var entries v1.JournalEntryListResponse
	test.DecodeResponse(suite.T(), &r, &entries)
	assert.Len(suite.T(), entries.Data, 2)
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalidBody() {
	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ "officeId": `},
		{"Number as name", `{ "name": 2 }`},
		{"Empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreateValidation() {
	editable := testBudgetEditable(suite.T(), 2026)
	editable.Amount = ptr(decimal.NewFromFloat(-100))

	budget := createTestBudget(suite.T(), editable, http.StatusBadRequest)

	require.NotNil(suite.T(), budget.Error)
	assert.Contains(suite.T(), *budget.Error, "amount")
}

func (suite *TestSuiteStandard) TestBudgetsCreateTypeMismatch() {
	editable := testBudgetEditable(suite.T(), 2026)
	wrongType := createTestGLAccount(suite.T(), v1.GLAccountEditable{Type: models.AccountTypeIncome})
	editable.CashAccountID = ptr(wrongType.Data.ID)

	budget := createTestBudget(suite.T(), editable, http.StatusBadRequest)

	require.NotNil(suite.T(), budget.Error)
	assert.Contains(suite.T(), *budget.Error, "INCOME")
}

func (suite *TestSuiteStandard) TestBudgetsCreateAccountNotFound() {
	editable := testBudgetEditable(suite.T(), 2026)
	editable.AssetAccountID = ptr(uint64(1337))

	budget := createTestBudget(suite.T(), editable, http.StatusNotFound)

	require.NotNil(suite.T(), budget.Error)
}

func (suite *TestSuiteStandard) TestBudgetsCreateDuplicate() {
	editable := testBudgetEditable(suite.T(), 2026)
	_ = createTestBudget(suite.T(), editable)

	editable.Name = ptr("Duplicate budget")
	budget := createTestBudget(suite.T(), editable, http.StatusConflict)

	require.NotNil(suite.T(), budget.Error)
	assert.Contains(suite.T(), *budget.Error, "already exists")
}

func (suite *TestSuiteStandard) TestBudgetsCreatePeriodClosed() {
	editable := testBudgetEditable(suite.T(), 2026)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/closures", v1.ClosureEditable{
		OfficeID:    *editable.OfficeID,
		ClosingDate: time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	budget := createTestBudget(suite.T(), editable, http.StatusConflict)

	require.NotNil(suite.T(), budget.Error)
	assert.Contains(suite.T(), *budget.Error, "closed")
}

func (suite *TestSuiteStandard) TestBudgetsGetSingle() {
	budget := createTestBudget(suite.T(), testBudgetEditable(suite.T(), 2026))

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET existing budget", fmt.Sprint(budget.Data.ID), http.StatusOK, http.MethodGet},
		{"GET no budget with this ID", "1337", http.StatusNotFound, http.MethodGet},
		{"GET invalid ID (negative)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET invalid ID (string)", "NotAnInteger", http.StatusBadRequest, http.MethodGet},
		{"PATCH invalid ID (string)", "NotAnInteger", http.StatusBadRequest, http.MethodPatch},
		{"DELETE invalid ID (string)", "NotAnInteger", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/budgets/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetFilter() {
	b1 := createTestBudget(suite.T(), testBudgetEditable(suite.T(), 2026))

	editable := testBudgetEditable(suite.T(), 2027)
	editable.Name = ptr("Northern branch")
	editable.Description = ptr("Covers the northern branch operations")
	editable.Disabled = ptr(true)
	_ = createTestBudget(suite.T(), editable)

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Office", fmt.Sprintf("office=%d", b1.Data.OfficeID), 1},
		{"Year", "year=2027", 1},
		{"Year without budgets", "year=2031", 0},
		{"Disabled", "disabled=true", 1},
		{"Name", "name=Northern", 1},
		{"Search in description", "search=operations", 1},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=2", 0},
		{"No filter", "", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count, "Wrong number of budgets for query %q", tt.query)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsPagination() {
	for i := 0; i < 3; i++ {
		_ = createTestBudget(suite.T(), testBudgetEditable(suite.T(), uint(2026+i)))
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), 2, response.Pagination.Count)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	editable := testBudgetEditable(suite.T(), 2026)
	budget := createTestBudget(suite.T(), editable)

	editable.Description = ptr("Adjusted for the second half")

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/budgets/%d", budget.Data.ID), editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Adjusted for the second half", response.Data.Description)

	// Only the changed field may be reported
	require.Len(suite.T(), response.ChangedFields, 1)
	assert.Contains(suite.T(), response.ChangedFields, "description")
}

func (suite *TestSuiteStandard) TestBudgetsUpdateNotFound() {
	editable := testBudgetEditable(suite.T(), 2026)

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budgets/1337", editable)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := createTestBudget(suite.T(), testBudgetEditable(suite.T(), 2026))

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets/%d", budget.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetDeleteResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), budget.Data.ID, response.ID)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%d", budget.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsDeleteNotFound() {
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/budgets/1337", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestBudgetsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	editable := testBudgetEditable(suite.T(), 2026)

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestBudget(t, editable, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				r := test.Request(t, http.MethodGet, "http://example.com/v1/budgets", "")
				test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)

				var response v1.BudgetListResponse
				test.DecodeResponse(t, &r, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}
