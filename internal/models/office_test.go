package models_test

import (
	"time"

	"github.com/glbudget/backend/internal/models"
)

func (suite *TestSuiteStandard) TestOfficeTrimWhitespace() {
	office := suite.createTestOffice(models.Office{Name: " Head office "})

	suite.Assert().Equal("Head office", office.Name)
}

func (suite *TestSuiteStandard) TestLatestClosureNeverClosed() {
	office := suite.createTestOffice(models.Office{})

	closure, err := models.LatestClosure(models.DB, office.ID)

	suite.Assert().Nil(err)
	suite.Assert().Nil(closure)
}

func (suite *TestSuiteStandard) TestLatestClosure() {
	office := suite.createTestOffice(models.Office{})

	for _, date := range []time.Time{
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	} {
		err := models.DB.Create(&models.AccountingClosure{OfficeID: office.ID, ClosingDate: date}).Error
		suite.Assert().Nil(err)
	}

	closure, err := models.LatestClosure(models.DB, office.ID)

	suite.Assert().Nil(err)
	suite.Require().NotNil(closure)
	suite.Assert().True(closure.ClosingDate.Equal(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func (suite *TestSuiteStandard) TestLatestClosureOtherOffice() {
	office := suite.createTestOffice(models.Office{})
	other := suite.createTestOffice(models.Office{})

	err := models.DB.Create(&models.AccountingClosure{
		OfficeID:    other.ID,
		ClosingDate: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}).Error
	suite.Assert().Nil(err)

	closure, err := models.LatestClosure(models.DB, office.ID)

	suite.Assert().Nil(err)
	suite.Assert().Nil(closure)
}
