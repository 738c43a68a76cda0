package v1

import (
	"net/http"

	"github.com/glbudget/backend/internal/httputil"
	"github.com/glbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type JournalEntryListResponse struct {
	Data  []models.JournalEntry `json:"data"`  // List of journal entries
	Error *string               `json:"error"` // The error, if any occurred
}

type JournalEntryQueryFilter struct {
	TransactionID string `form:"transaction"` // By transaction ID
	BudgetID      uint64 `form:"budget"`      // By budget ID
	OfficeID      uint64 `form:"office"`      // By office ID
}

func (f JournalEntryQueryFilter) model() models.JournalEntry {
	return models.JournalEntry{
		TransactionID: f.TransactionID,
		BudgetID:      f.BudgetID,
		OfficeID:      f.OfficeID,
	}
}

// RegisterJournalEntryRoutes registers the routes for journal entries with
// the RouterGroup that is passed.
//
// Journal entries are only ever written by the accounting core, the API
// exposes them read-only.
func RegisterJournalEntryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsJournalEntryList)
	r.GET("", GetJournalEntries)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			JournalEntries
// @Success		204
// @Router			/v1/journal-entries [options]
func OptionsJournalEntryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List journal entries
// @Description	Returns a list of journal entries
// @Tags			JournalEntries
// @Produce		json
// @Success		200	{object}	JournalEntryListResponse
// @Failure		500	{object}	JournalEntryListResponse
// @Router			/v1/journal-entries [get]
// @Param			transaction	query	string	false	"Filter by transaction ID"
// @Param			budget		query	uint	false	"Filter by budget ID"
// @Param			office		query	uint	false	"Filter by office ID"
func GetJournalEntries(c *gin.Context) {
	var filter JournalEntryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	entries := make([]models.JournalEntry, 0)

	err := models.DB.
		Order("id ASC").
		Where(filter.model(), queryFields...).
		Find(&entries).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), JournalEntryListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, JournalEntryListResponse{Data: entries})
}
