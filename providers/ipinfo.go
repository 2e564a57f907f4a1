package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"

	"github.com/9seconds/loglocate/loclib"
	"github.com/pariz/gountries"
)

const ipinfoDefaultBaseURL = "https://ipinfo.io/"

var (
	ipinfoCountryQuery = gountries.New()
	ipinfoASPrefix     = regexp.MustCompile(`^AS\d+\s+`)
)

type ipinfoResponse struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Org     string `json:"org"`
	Bogon   bool   `json:"bogon"`
	ASN     *struct {
		Name string `json:"name"`
	} `json:"asn"`
}

type ipinfoProvider struct {
	authToken string
	baseURL   string
	client    loclib.HTTPClient
}

func (i ipinfoProvider) Name() string {
	return NameIPInfo
}

func (i ipinfoProvider) Lookup(ctx context.Context, ip net.IP) (loclib.LocationRecord, error) {
	result := loclib.LocationRecord{}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.baseURL+ip.String(), nil)
	if err != nil {
		return result, fmt.Errorf("cannot build a request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if i.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+i.authToken)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return result, fmt.Errorf("cannot send a request: %w", err)
	}

	defer flushResponse(resp.Body)

	jsonResponse := ipinfoResponse{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&jsonResponse); err != nil {
		return result, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if jsonResponse.Bogon {
		return result, loclib.NewServiceError(NameIPInfo, "bogon address", nil)
	}

	org := ipinfoASPrefix.ReplaceAllString(jsonResponse.Org, "")

	result.City = jsonResponse.City
	result.Country = ipinfoCountryName(jsonResponse.Country)
	result.Organization = org
	result.ASName = org

	if jsonResponse.ASN != nil && jsonResponse.ASN.Name != "" {
		result.ASName = jsonResponse.ASN.Name
	}

	return result, nil
}

func ipinfoCountryName(alpha2 string) string {
	if alpha2 == "" {
		return ""
	}

	country, err := ipinfoCountryQuery.FindCountryByAlpha(strings.ToUpper(alpha2))
	if err != nil {
		return alpha2
	}

	return country.Name.Common
}

// NewIPInfo returns a provider for ipinfo.io.
//
// Supported parameters:
//
// auth_token - optional token. Without it service has quite strict
// limits.
//
// base_url - a prefix of lookup URL. Default is https://ipinfo.io/
func NewIPInfo(client loclib.HTTPClient, parameters map[string]string) loclib.Provider {
	baseURL := parameters["base_url"]
	if baseURL == "" {
		baseURL = ipinfoDefaultBaseURL
	}

	return ipinfoProvider{
		authToken: parameters["auth_token"],
		baseURL:   baseURL,
		client:    client,
	}
}
