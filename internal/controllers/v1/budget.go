package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/glbudget/backend/internal/budgets"
	"github.com/glbudget/backend/internal/httputil"
	"github.com/glbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// actingUserHeader carries the id of the user performing the request. It is
// passed explicitly into the budget core instead of being read from ambient
// request state there.
const actingUserHeader = "X-Acting-User"

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID of the budget"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create budget
// @Description	Creates a new budget and posts the balanced journal transaction for its amount
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		409		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Param			X-Acting-User	header	int	false	"ID of the user performing the request"
// @Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var editable BudgetEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &e})
		return
	}

	actingUserID, _ := strconv.ParseUint(c.GetHeader(actingUserHeader), 10, 64)

	budget, err := budgets.NewService(models.DB).Create(editable.payload(), actingUserID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: &budget})
}

// @Summary		List budgets
// @Description	Returns a list of budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
// @Param			office		query	uint	false	"Filter by office ID"
// @Param			year		query	uint	false	"Filter by year"
// @Param			disabled	query	bool	false	"Filter by disabled state"
// @Param			name		query	string	false	"Filter by name"
// @Param			search		query	string	false	"Search for this text in name and description"
// @Param			offset		query	uint	false	"The offset of the first budget returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of budgets to return. Defaults to 50."
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var budgetList []models.Budget

	// Always sort by name
	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("description LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)).Or(
				models.DB.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			),
		)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 budgets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&budgetList).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	if budgetList == nil {
		budgetList = make([]models.Budget, 0)
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data: budgetList,
		Pagination: &Pagination{
			Count:  len(budgetList),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ID of the budget"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// @Summary		Update budget
// @Description	Updates an existing budget. Only fields whose value differs from the stored one are written, the response lists exactly those fields.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ID of the budget"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &e})
		return
	}

	budget, changes, err := budgets.NewService(models.DB).Update(uri.ID, editable.payload())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget, ChangedFields: changes})
}

// @Summary		Delete budget
// @Description	Deletes a budget. Journal history referring to the budget is kept.
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetDeleteResponse
// @Failure		400	{object}	BudgetDeleteResponse
// @Failure		404	{object}	BudgetDeleteResponse
// @Failure		500	{object}	BudgetDeleteResponse
// @Param			id	path		URIID	true	"ID of the budget"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetDeleteResponse{Error: &e})
		return
	}

	err = budgets.NewService(models.DB).Delete(uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetDeleteResponse{ID: uri.ID, Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetDeleteResponse{ID: uri.ID})
}
