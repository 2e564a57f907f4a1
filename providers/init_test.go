package providers_test

import (
	"net/http"

	"github.com/9seconds/loglocate/loclib"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

type OnlineProviderTestSuite struct {
	suite.Suite

	http loclib.HTTPClient
	prov loclib.Provider
}

func (suite *OnlineProviderTestSuite) SetupTest() {
	suite.http = loclib.NewHTTPClient(&http.Client{}, "test-agent")
}

type HTTPMockMixin struct{}

func (m HTTPMockMixin) SetupSuite() {
	httpmock.Activate()
}

func (m HTTPMockMixin) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (m HTTPMockMixin) TearDownTest() {
	httpmock.Reset()
}
