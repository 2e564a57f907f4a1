package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/9seconds/loglocate/loclib"
	"github.com/qri-io/jsonschema"
)

const (
	ipapiDefaultBaseURL  = "http://ip-api.com/json/"
	ipapiStatusSuccess   = "success"
	ipapiUnknownErrorMsg = "unknown error"
)

var ipapiResponseSchema = func() *jsonschema.Schema {
	data := `{
        "type": "object",
        "required": [
            "status"
        ],
        "properties": {
            "status": {
                "type": "string",
                "minLength": 1
            },
            "message": {"type": ["string", "null"]},
            "city": {"type": ["string", "null"]},
            "country": {"type": ["string", "null"]},
            "org": {"type": ["string", "null"]},
            "asname": {"type": ["string", "null"]}
        }
    }`

	rv := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(data), rv); err != nil {
		panic(err)
	}

	return rv
}()

type ipapiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	City    string `json:"city"`
	Country string `json:"country"`
	Org     string `json:"org"`
	ASName  string `json:"asname"`
}

type ipapiProvider struct {
	client  loclib.HTTPClient
	baseURL string
}

func (i ipapiProvider) Name() string {
	return NameIPAPI
}

func (i ipapiProvider) Lookup(ctx context.Context, ip net.IP) (loclib.LocationRecord, error) {
	result := loclib.LocationRecord{}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.baseURL+ip.String(), nil)
	if err != nil {
		return result, fmt.Errorf("cannot build a request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return result, fmt.Errorf("cannot send a request: %w", err)
	}

	defer flushResponse(resp.Body)

	body, err := readResponse(resp.Body)
	if err != nil {
		return result, fmt.Errorf("cannot read a response: %w", err)
	}

	errs, err := ipapiResponseSchema.ValidateBytes(ctx, body)

	switch {
	case err != nil:
		return result, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	case len(errs) > 0:
		return result, fmt.Errorf("%w: %v", ErrMalformedResponse, errs[0])
	}

	jsonResponse := ipapiResponse{}

	if err := json.Unmarshal(body, &jsonResponse); err != nil {
		return result, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if jsonResponse.Status != ipapiStatusSuccess {
		message := jsonResponse.Message
		if message == "" {
			message = ipapiUnknownErrorMsg
		}

		return result, loclib.NewServiceError(NameIPAPI, message, nil)
	}

	result.City = jsonResponse.City
	result.Country = jsonResponse.Country
	result.Organization = jsonResponse.Org
	result.ASName = jsonResponse.ASName

	return result, nil
}

// NewIPAPI returns a provider for ip-api.com. This is a free service
// which does not require any token but it works only with plain HTTP.
//
// Supported parameters:
//
// base_url - a prefix of lookup URL. Address is appended to it.
// Default is http://ip-api.com/json/
func NewIPAPI(client loclib.HTTPClient, parameters map[string]string) loclib.Provider {
	baseURL := parameters["base_url"]
	if baseURL == "" {
		baseURL = ipapiDefaultBaseURL
	}

	return ipapiProvider{
		client:  client,
		baseURL: baseURL,
	}
}
