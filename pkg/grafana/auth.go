package grafana

import (
	"fmt"
	"net/http"
)

type authenticator interface {
	authenticateRequest(req *http.Request)
}

type basicAuth struct {
	username string
	password string
}

func newBasicAuth(username string, password string) (*basicAuth, error) {
	if username == "" {
		return nil, fmt.Errorf("a username is required to authenticate against the Grafana API")
	}

	return &basicAuth{
		username: username,
		password: password,
	}, nil
}

func (a *basicAuth) authenticateRequest(req *http.Request) {
	req.SetBasicAuth(a.username, a.password)
}

type apiKeyAuth struct {
	authorizationHeader string
}

func newApiKeyAuth(apiKey string) (*apiKeyAuth, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("an API key is required to authenticate against the Grafana API")
	}

	return &apiKeyAuth{
		authorizationHeader: fmt.Sprintf("Bearer %s", apiKey),
	}, nil
}

func (a *apiKeyAuth) authenticateRequest(req *http.Request) {
	req.Header.Set("Authorization", a.authorizationHeader)
}
