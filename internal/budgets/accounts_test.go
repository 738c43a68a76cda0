package budgets_test

import (
	"github.com/glbudget/backend/internal/budgets"
	"github.com/glbudget/backend/internal/models"
)

func (suite *TestSuiteStandard) TestResolveTyped() {
	account := suite.createTestGLAccount(models.AccountTypeAsset)

	resolved, err := budgets.NewAccountResolver(models.DB).ResolveTyped(account.ID, models.AccountTypeAsset)

	suite.Assert().Nil(err)
	suite.Assert().Equal(account.ID, resolved.ID)
}

func (suite *TestSuiteStandard) TestResolveTypedNotFound() {
	_, err := budgets.NewAccountResolver(models.DB).ResolveTyped(1337, models.AccountTypeAsset)

	var notFoundErr budgets.AccountNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.Assert().Equal(uint64(1337), notFoundErr.AccountID)
}

func (suite *TestSuiteStandard) TestResolveTypedMismatch() {
	account := suite.createTestGLAccount(models.AccountTypeIncome)

	_, err := budgets.NewAccountResolver(models.DB).ResolveTyped(account.ID, models.AccountTypeAsset)

	var mismatchErr budgets.AccountTypeMismatchError
	suite.Require().ErrorAs(err, &mismatchErr)
	suite.Assert().Equal(models.AccountTypeIncome, mismatchErr.Found)
	suite.Assert().Equal(models.AccountTypeAsset, mismatchErr.Required)
}

func (suite *TestSuiteStandard) TestResolveTypedHeader() {
	account := suite.createTestHeaderAccount(models.AccountTypeAsset)

	_, err := budgets.NewAccountResolver(models.DB).ResolveTyped(account.ID, models.AccountTypeAsset)

	var headerErr budgets.HeaderAccountError
	suite.Assert().ErrorAs(err, &headerErr)
}

func (suite *TestSuiteStandard) TestResolveAsParent() {
	expense := suite.createTestGLAccount(models.AccountTypeExpense)
	asset := suite.createTestGLAccount(models.AccountTypeAsset)

	resolver := budgets.NewAccountResolver(models.DB)

	_, err := resolver.ResolveAsParent(expense.ID)
	suite.Assert().Nil(err)

	_, err = resolver.ResolveAsParent(asset.ID)
	var mismatchErr budgets.AccountTypeMismatchError
	suite.Assert().ErrorAs(err, &mismatchErr)
}
