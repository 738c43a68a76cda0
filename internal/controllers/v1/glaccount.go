package v1

import (
	"net/http"

	"github.com/glbudget/backend/internal/httputil"
	"github.com/glbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// GLAccountEditable contains the fields clients may set on a GL account.
type GLAccountEditable struct {
	Name          string             `json:"name" example:"Cash at hand"`   // Name of the account
	Type          models.AccountType `json:"type" example:"ASSET"`          // One of ASSET, LIABILITY, EQUITY, INCOME, EXPENSE
	HeaderAccount bool               `json:"headerAccount" example:"false"` // Header accounts group children and may not carry transactions
	Disabled      bool               `json:"disabled" example:"false"`      // If the account is disabled
}

func (editable GLAccountEditable) model() models.GLAccount {
	return models.GLAccount{
		Name:          editable.Name,
		Type:          editable.Type,
		HeaderAccount: editable.HeaderAccount,
		Disabled:      editable.Disabled,
	}
}

type GLAccountResponse struct {
	Data  *models.GLAccount `json:"data"`  // The GL account
	Error *string           `json:"error"` // The error, if any occurred
}

type GLAccountListResponse struct {
	Data  []models.GLAccount `json:"data"`  // List of GL accounts
	Error *string            `json:"error"` // The error, if any occurred
}

// RegisterGLAccountRoutes registers the routes for GL accounts with
// the RouterGroup that is passed.
func RegisterGLAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsGLAccountList)
	r.GET("", GetGLAccounts)
	r.POST("", CreateGLAccount)
	r.GET("/:id", GetGLAccount)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			GLAccounts
// @Success		204
// @Router			/v1/gl-accounts [options]
func OptionsGLAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create GL account
// @Description	Creates a new general-ledger account
// @Tags			GLAccounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	GLAccountResponse
// @Failure		400		{object}	GLAccountResponse
// @Failure		500		{object}	GLAccountResponse
// @Param			account	body		GLAccountEditable	true	"GL account"
// @Router			/v1/gl-accounts [post]
func CreateGLAccount(c *gin.Context) {
	var editable GLAccountEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, GLAccountResponse{Error: &e})
		return
	}

	account := editable.model()
	err = models.DB.Create(&account).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GLAccountResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, GLAccountResponse{Data: &account})
}

// @Summary		List GL accounts
// @Description	Returns a list of general-ledger accounts
// @Tags			GLAccounts
// @Produce		json
// @Success		200	{object}	GLAccountListResponse
// @Failure		500	{object}	GLAccountListResponse
// @Router			/v1/gl-accounts [get]
func GetGLAccounts(c *gin.Context) {
	accounts := make([]models.GLAccount, 0)

	err := models.DB.Order("name ASC").Find(&accounts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GLAccountListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, GLAccountListResponse{Data: accounts})
}

// @Summary		Get GL account
// @Description	Returns a specific general-ledger account
// @Tags			GLAccounts
// @Produce		json
// @Success		200	{object}	GLAccountResponse
// @Failure		400	{object}	GLAccountResponse
// @Failure		404	{object}	GLAccountResponse
// @Failure		500	{object}	GLAccountResponse
// @Param			id	path		URIID	true	"ID of the GL account"
// @Router			/v1/gl-accounts/{id} [get]
func GetGLAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GLAccountResponse{Error: &e})
		return
	}

	var account models.GLAccount
	err = models.DB.First(&account, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GLAccountResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, GLAccountResponse{Data: &account})
}
