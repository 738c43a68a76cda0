package v1

import (
	"net/http"
	"time"

	"github.com/glbudget/backend/internal/httputil"
	"github.com/glbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// OfficeEditable contains the fields clients may set on an office.
type OfficeEditable struct {
	Name string `json:"name" example:"Head office"` // Name of the office
}

type OfficeResponse struct {
	Data  *models.Office `json:"data"`  // The office
	Error *string        `json:"error"` // The error, if any occurred
}

type OfficeListResponse struct {
	Data  []models.Office `json:"data"`  // List of offices
	Error *string         `json:"error"` // The error, if any occurred
}

// ClosureEditable contains the fields clients may set on an accounting
// closure.
type ClosureEditable struct {
	OfficeID    uint64    `json:"officeId" example:"1"`                     // The office being closed
	ClosingDate time.Time `json:"closingDate" example:"2025-12-31T00:00:00Z"` // The books are locked through this date
}

type ClosureResponse struct {
	Data  *models.AccountingClosure `json:"data"`  // The closure
	Error *string                   `json:"error"` // The error, if any occurred
}

// RegisterOfficeRoutes registers the routes for offices with
// the RouterGroup that is passed.
func RegisterOfficeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsOfficeList)
	r.GET("", GetOffices)
	r.POST("", CreateOffice)
}

// RegisterClosureRoutes registers the routes for accounting closures with
// the RouterGroup that is passed.
func RegisterClosureRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", func(c *gin.Context) {
		c.Header("allow", "POST")
		c.Status(http.StatusNoContent)
	})
	r.POST("", CreateClosure)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Offices
// @Success		204
// @Router			/v1/offices [options]
func OptionsOfficeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create office
// @Description	Creates a new office
// @Tags			Offices
// @Accept			json
// @Produce		json
// @Success		201		{object}	OfficeResponse
// @Failure		400		{object}	OfficeResponse
// @Failure		500		{object}	OfficeResponse
// @Param			office	body		OfficeEditable	true	"Office"
// @Router			/v1/offices [post]
func CreateOffice(c *gin.Context) {
	var editable OfficeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OfficeResponse{Error: &e})
		return
	}

	office := models.Office{Name: editable.Name}
	err = models.DB.Create(&office).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OfficeResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, OfficeResponse{Data: &office})
}

// @Summary		List offices
// @Description	Returns a list of offices
// @Tags			Offices
// @Produce		json
// @Success		200	{object}	OfficeListResponse
// @Failure		500	{object}	OfficeListResponse
// @Router			/v1/offices [get]
func GetOffices(c *gin.Context) {
	offices := make([]models.Office, 0)

	err := models.DB.Order("name ASC").Find(&offices).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OfficeListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, OfficeListResponse{Data: offices})
}

// @Summary		Close accounting period
// @Description	Locks an office's books through the closing date. Journal entries dated on or before it are rejected.
// @Tags			Offices
// @Accept			json
// @Produce		json
// @Success		201		{object}	ClosureResponse
// @Failure		400		{object}	ClosureResponse
// @Failure		500		{object}	ClosureResponse
// @Param			closure	body		ClosureEditable	true	"Closure"
// @Router			/v1/closures [post]
func CreateClosure(c *gin.Context) {
	var editable ClosureEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ClosureResponse{Error: &e})
		return
	}

	closure := models.AccountingClosure{
		OfficeID:    editable.OfficeID,
		ClosingDate: editable.ClosingDate,
	}
	err = models.DB.Create(&closure).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClosureResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, ClosureResponse{Data: &closure})
}
