package budgets

import (
	"fmt"
	"strings"
)

// FieldError describes a single violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors aggregates all validation failures of a payload. Validation
// never stops at the first violation, every failed field is reported.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	messages := make([]string, len(e))
	for i, fieldError := range e {
		messages[i] = fmt.Sprintf("%s: %s", fieldError.Field, fieldError.Message)
	}

	return "validation failed: " + strings.Join(messages, "; ")
}

type validationMode int

const (
	modeCreate validationMode = iota
	modeUpdate
)

const (
	maxNameLength        = 45
	maxDescriptionLength = 500
)

// validate checks the structural rules for a budget payload. The office is
// only required on creation, it cannot be changed afterwards.
func (p Payload) validate(mode validationMode) FieldErrors {
	var errs FieldErrors

	required := func(field string) {
		errs = append(errs, FieldError{Field: field, Message: "must be provided"})
	}

	if p.Amount == nil {
		required("amount")
	} else if p.Amount.IsNegative() {
		errs = append(errs, FieldError{Field: "amount", Message: "must not be negative"})
	}

	if p.Name == nil {
		required("name")
	} else if name := strings.TrimSpace(*p.Name); len(name) < 1 || len(name) > maxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: fmt.Sprintf("must be between 1 and %d characters", maxNameLength)})
	}

	if p.Description != nil && len(strings.TrimSpace(*p.Description)) > maxDescriptionLength {
		errs = append(errs, FieldError{Field: "description", Message: fmt.Sprintf("must not exceed %d characters", maxDescriptionLength)})
	}

	if p.FromDate == nil {
		required("fromDate")
	}

	if p.ToDate == nil {
		required("toDate")
	}

	if p.Disabled == nil {
		required("disabled")
	}

	if p.CreateDate == nil {
		required("createDate")
	}

	if mode == modeCreate {
		if p.OfficeID == nil {
			required("officeId")
		} else if *p.OfficeID == 0 {
			errs = append(errs, FieldError{Field: "officeId", Message: "must be greater than zero"})
		}
	}

	accountRefs := []struct {
		field string
		value *uint64
	}{
		{"liabilityAccountId", p.LiabilityAccountID},
		{"cashAccountId", p.CashAccountID},
		{"expenseAccountId", p.ExpenseAccountID},
		{"assetAccountId", p.AssetAccountID},
	}

	for _, ref := range accountRefs {
		if ref.value == nil {
			required(ref.field)
		} else if *ref.value == 0 {
			errs = append(errs, FieldError{Field: ref.field, Message: "must be greater than zero"})
		}
	}

	if p.Year == nil {
		required("year")
	} else if *p.Year == 0 {
		errs = append(errs, FieldError{Field: "year", Message: "must be greater than zero"})
	}

	return errs
}
