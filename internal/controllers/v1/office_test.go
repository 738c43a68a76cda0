package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/glbudget/backend/internal/controllers/v1"
	"github.com/glbudget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOfficesCreate() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/offices", v1.OfficeEditable{Name: "Head office"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.OfficeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Head office", response.Data.Name)
	assert.NotZero(suite.T(), response.Data.ID)
}

func (suite *TestSuiteStandard) TestOfficesCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/offices", `{ "name": `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestOfficesList() {
	_ = createTestOffice(suite.T())
	_ = createTestOffice(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/offices", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OfficeListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestClosuresCreate() {
	office := createTestOffice(suite.T())

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/closures", v1.ClosureEditable{
		OfficeID:    office.Data.ID,
		ClosingDate: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ClosureResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), office.Data.ID, response.Data.OfficeID)
}

func (suite *TestSuiteStandard) TestClosuresOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/closures", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "POST", r.Header().Get("allow"))
}
