package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Office is the organizational unit owning budgets and journal entries.
type Office struct {
	Model
	Name string `json:"name"`
}

func (o *Office) BeforeSave(_ *gorm.DB) error {
	o.Name = strings.TrimSpace(o.Name)
	return nil
}

// AccountingClosure locks an office's books through its closing date.
// Journal entries dated on or before the latest closure are rejected.
type AccountingClosure struct {
	Model
	OfficeID    uint64    `json:"officeId"`
	ClosingDate time.Time `json:"closingDate"`
}

// BeforeSave sets the timezone for the closing date to UTC.
func (c *AccountingClosure) BeforeSave(_ *gorm.DB) error {
	c.ClosingDate = c.ClosingDate.In(time.UTC)
	return nil
}

func (c *AccountingClosure) AfterFind(tx *gorm.DB) error {
	_ = c.Model.AfterFind(tx)

	c.ClosingDate = c.ClosingDate.In(time.UTC)
	return nil
}

// LatestClosure returns the most recent accounting closure for the office.
// It returns nil when the office has never been closed.
func LatestClosure(db *gorm.DB, officeID uint64) (*AccountingClosure, error) {
	var closure AccountingClosure

	err := db.
		Where(&AccountingClosure{OfficeID: officeID}).
		Order("closing_date DESC").
		First(&closure).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrResourceNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &closure, nil
}
