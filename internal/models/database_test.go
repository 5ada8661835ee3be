package models_test

import (
	"github.com/spendlog/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	// Close the connection the suite set up, it gets replaced below
	suite.CloseDB()

	err := models.Connect("/this/path/does/not/exist/spendlog.db")
	assert.NotNil(suite.T(), err)

	// Reconnect so that the teardown has a connection to close
	suite.SetupTest()
}
