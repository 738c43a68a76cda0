package models_test

import (
	"os"

	"github.com/glbudget/backend/internal/models"
	"github.com/glbudget/backend/test"
)

func (suite *TestSuiteStandard) TestConnectPostgresInvalidHost() {
	os.Setenv("DB_HOST", "invalid")

	err := models.Connect(test.TmpFile(suite.T()))
	suite.Assert().NotNil(err)

	os.Unsetenv("DB_HOST")

	// Reconnect so that TearDownTest has a database to close
	err = models.Connect(test.TmpFile(suite.T()))
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestNotFoundHumanized() {
	var office models.Office
	err := models.DB.First(&office, 1337).Error

	suite.Assert().NotNil(err)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "there is no office matching your query")
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	var office models.Office
	err := models.DB.First(&office, 1).Error

	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
