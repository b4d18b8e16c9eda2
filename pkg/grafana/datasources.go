package grafana

import (
	"context"
	"fmt"
)

const datasourcesPath = "api/datasources"

type DatasourcesClient struct {
	clientBase
}

func (c DatasourcesClient) List(ctx context.Context) (*Response, error) {
	req, err := c.newGetRequest(ctx, datasourcesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("error while listing datasources: %w", err)
	}
	return c.do(req)
}

func (c DatasourcesClient) Create(ctx context.Context, datasource Payload) (*Response, error) {
	data, err := datasource.marshalJSON()
	if err != nil {
		return nil, fmt.Errorf("could not marshal datasource %v: %w", datasource.Title(), err)
	}
	req, err := c.newPostRequest(ctx, datasourcesPath, data)
	if err != nil {
		return nil, fmt.Errorf("error while creating datasource %v: could not create request POST %s: %w", datasource.Title(), datasourcesPath, err)
	}
	return c.do(req)
}
