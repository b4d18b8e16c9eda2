package grafana

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"
)

type clientBase struct {
	baseURL    *url.URL
	httpClient *http.Client
	auth       authenticator
}

func NewWithApiKey(baseURL *url.URL, apiKey string) (Interface, error) {
	return NewWithApiKeyAndClient(baseURL, http.DefaultClient, apiKey)
}

func NewWithApiKeyAndClient(baseURL *url.URL, client *http.Client, apiKey string) (Interface, error) {
	auth, err := newApiKeyAuth(apiKey)
	if err != nil {
		return nil, err
	}
	return newGrafanaClient(baseURL, client, auth)
}

func NewWithUserCredentials(baseURL *url.URL, username, password string) (Interface, error) {
	return NewWithUserCredentialsAndClient(baseURL, http.DefaultClient, username, password)
}

func NewWithUserCredentialsAndClient(baseURL *url.URL, client *http.Client, username, password string) (Interface, error) {
	auth, err := newBasicAuth(username, password)
	if err != nil {
		return nil, err
	}
	return newGrafanaClient(baseURL, client, auth)
}

func newGrafanaClient(baseURL *url.URL, client *http.Client, auth authenticator) (Interface, error) {
	if baseURL == nil {
		return nil, fmt.Errorf("an url is required")
	}
	if client == nil {
		client = http.DefaultClient
	}

	base := clientBase{
		baseURL:    baseURL,
		httpClient: client,
		auth:       auth,
	}

	return GrafanaClient{
		health:      HealthClient{base},
		datasources: DatasourcesClient{base},
		dashboards:  DashboardsClient{base},
	}, nil
}

func (c *clientBase) newPostRequest(ctx context.Context, uri string, body []byte) (*http.Request, error) {
	return c.newRequest(ctx, http.MethodPost, uri, nil, bytes.NewBuffer(body))
}

func (c *clientBase) newGetRequest(ctx context.Context, uri string, params url.Values) (*http.Request, error) {
	return c.newRequest(ctx, http.MethodGet, uri, params, nil)
}

func (c *clientBase) newRequest(ctx context.Context, method, uri string, params url.Values, body io.Reader) (*http.Request, error) {
	u := *c.baseURL
	u.Path = path.Join("/", u.Path, uri)
	if params != nil {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "could not create request")
	}

	if c.auth != nil {
		c.auth.authenticateRequest(req)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// do sends req and decodes the JSON body of a 2xx response. Any other status
// becomes an *APIError.
func (c *clientBase) do(req *http.Request) (*Response, error) {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read response of %s %s", req.Method, req.URL.Path)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, newAPIError(req, res, body)
	}

	j, err := decodeResponse(body)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode response of %s %s", req.Method, req.URL.Path)
	}
	return j, nil
}
