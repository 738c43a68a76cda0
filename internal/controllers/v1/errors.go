package v1

import (
	"errors"
	"net/http"

	"github.com/glbudget/backend/internal/budgets"
	"github.com/glbudget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no budget matching your query"`
}

// status returns the appropriate HTTP status for an error raised by the
// accounting core or the database layer.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	var officeNotFound budgets.OfficeNotFoundError
	var accountNotFound budgets.AccountNotFoundError
	if errors.Is(err, budgets.ErrBudgetNotFound) ||
		errors.Is(err, models.ErrResourceNotFound) ||
		errors.As(err, &officeNotFound) ||
		errors.As(err, &accountNotFound) {
		return http.StatusNotFound
	}

	var budgetExists budgets.BudgetExistsError
	var periodClosed budgets.PeriodClosedError
	if errors.As(err, &budgetExists) ||
		errors.As(err, &periodClosed) ||
		errors.Is(err, models.ErrBudgetAssetYearNotUnique) {
		return http.StatusConflict
	}

	// Validation failures, account type mismatches, header account misuse
	// and malformed requests are all client-correctable.
	return http.StatusBadRequest
}
