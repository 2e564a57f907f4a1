package loclib

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
)

type httpClient struct {
	userAgent string
	client    *http.Client
}

type cancelOnCloseBody struct {
	io.ReadCloser

	cancel context.CancelFunc
}

func (c cancelOnCloseBody) Close() error {
	defer c.cancel()

	return c.ReadCloser.Close()
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	cancel := context.CancelFunc(func() {})

	if h.client.Timeout > 0 {
		var ctx context.Context

		ctx, cancel = context.WithTimeout(req.Context(), h.client.Timeout)
		req = req.WithContext(ctx)
	}

	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		cancel()

		if resp != nil {
			io.Copy(ioutil.Discard, resp.Body) // nolint: errcheck
			resp.Body.Close()
		}

		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		io.Copy(ioutil.Discard, resp.Body) // nolint: errcheck
		resp.Body.Close()
		cancel()

		return nil, fmt.Errorf("netloc has responded with %s", resp.Status)
	}

	resp.Body = cancelOnCloseBody{
		ReadCloser: resp.Body,
		cancel:     cancel,
	}

	return resp, nil
}

// NewHTTPClient prepares a new HTTP client which sets a user agent and
// converts 4xx/5xx responses into errors.
//
// If client has a timeout, it is applied as a deadline of request
// context so it covers reading of the body as well. There are no
// retries: each request is sent exactly once.
func NewHTTPClient(client *http.Client, userAgent string) HTTPClient {
	return httpClient{
		userAgent: userAgent,
		client:    client,
	}
}
