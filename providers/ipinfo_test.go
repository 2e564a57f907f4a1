package providers_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"

	"github.com/9seconds/loglocate/loclib"
	"github.com/9seconds/loglocate/providers"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/suite"
)

type MockedIPInfoTestSuite struct {
	OnlineProviderTestSuite
	HTTPMockMixin
}

func (suite *MockedIPInfoTestSuite) SetupTest() {
	suite.OnlineProviderTestSuite.SetupTest()

	suite.prov = providers.NewIPInfo(suite.http, map[string]string{
		"auth_token": "token",
	})
}

func (suite *MockedIPInfoTestSuite) TestName() {
	suite.Equal(providers.NameIPInfo, suite.prov.Name())
}

func (suite *MockedIPInfoTestSuite) TestLookupClosedContext() {
	ctx, cancel := context.WithCancel(context.Background())

	cancel()

	_, err := suite.prov.Lookup(ctx, net.ParseIP("23.22.13.113"))

	suite.Error(err)
}

func (suite *MockedIPInfoTestSuite) TestLookupFailed() {
	httpmock.RegisterResponder("GET",
		"https://ipinfo.io/23.22.13.113",
		httpmock.NewStringResponder(http.StatusInternalServerError, ""))

	_, err := suite.prov.Lookup(context.Background(),
		net.ParseIP("23.22.13.113"))

	suite.Error(err)
}

func (suite *MockedIPInfoTestSuite) TestLookupBadJSON() {
	httpmock.RegisterResponder("GET",
		"https://ipinfo.io/23.22.13.113",
		httpmock.NewStringResponder(http.StatusOK, `{[`))

	_, err := suite.prov.Lookup(context.Background(),
		net.ParseIP("23.22.13.113"))

	suite.True(errors.Is(err, providers.ErrMalformedResponse))
}

func (suite *MockedIPInfoTestSuite) TestLookupBogon() {
	httpmock.RegisterResponder("GET",
		"https://ipinfo.io/10.0.0.1",
		httpmock.NewStringResponder(http.StatusOK, `{"ip": "10.0.0.1", "bogon": true}`))

	_, err := suite.prov.Lookup(context.Background(),
		net.ParseIP("10.0.0.1"))

	serviceErr := &loclib.ServiceError{}

	suite.True(errors.As(err, &serviceErr))
	suite.Equal("bogon address", serviceErr.Message)
}

func (suite *MockedIPInfoTestSuite) TestLookupOk() {
	httpmock.RegisterResponder("GET",
		"https://ipinfo.io/23.22.13.113",
		func(req *http.Request) (*http.Response, error) {
			suite.Equal("Bearer token", req.Header.Get("Authorization"))

			return httpmock.NewStringResponse(http.StatusOK, `{
  "ip": "23.22.13.113",
  "hostname": "ec2-23-22-13-113.compute-1.amazonaws.com",
  "city": "Virginia Beach",
  "region": "Virginia",
  "country": "US",
  "loc": "36.7957,-76.0126",
  "org": "AS14618 Amazon.com, Inc.",
  "postal": "23479",
  "timezone": "America/New_York",
  "readme": "https://ipinfo.io/missingauth"
}`), nil
		})

	result, err := suite.prov.Lookup(context.Background(),
		net.ParseIP("23.22.13.113"))

	suite.NoError(err)
	suite.Equal(loclib.LocationRecord{
		City:         "Virginia Beach",
		Country:      "United States",
		Organization: "Amazon.com, Inc.",
		ASName:       "Amazon.com, Inc.",
	}, result)
}

func (suite *MockedIPInfoTestSuite) TestLookupASNObject() {
	httpmock.RegisterResponder("GET",
		"https://ipinfo.io/8.8.8.8",
		httpmock.NewStringResponder(http.StatusOK, `{
  "ip": "8.8.8.8",
  "city": "Mountain View",
  "country": "XX",
  "org": "AS15169 Google LLC",
  "asn": {"asn": "AS15169", "name": "Google LLC", "domain": "google.com"}
}`))

	result, err := suite.prov.Lookup(context.Background(),
		net.ParseIP("8.8.8.8"))

	suite.NoError(err)
	suite.Equal("XX", result.Country)
	suite.Equal("Google LLC", result.Organization)
	suite.Equal("Google LLC", result.ASName)
}

type IntegrationIPInfoTestSuite struct {
	OnlineProviderTestSuite
}

func (suite *IntegrationIPInfoTestSuite) SetupTest() {
	suite.OnlineProviderTestSuite.SetupTest()

	suite.prov = providers.NewIPInfo(suite.http, map[string]string{})
}

func (suite *IntegrationIPInfoTestSuite) TestLookup() {
	result, err := suite.prov.Lookup(context.Background(),
		net.ParseIP("23.22.13.113"))

	suite.NoError(err)
	suite.Equal("United States", result.Country)
}

func TestIPInfo(t *testing.T) {
	suite.Run(t, &MockedIPInfoTestSuite{})
}

func TestIntegrationIPInfo(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipped because of the short mode")
	}

	suite.Run(t, &IntegrationIPInfoTestSuite{})
}
