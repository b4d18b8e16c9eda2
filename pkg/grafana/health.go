package grafana

import (
	"context"
	"fmt"
)

const healthPath = "api/health"

type HealthClient struct {
	clientBase
}

func (c HealthClient) Check(ctx context.Context) (*Response, error) {
	req, err := c.newGetRequest(ctx, healthPath, nil)
	if err != nil {
		return nil, fmt.Errorf("error while checking health: %w", err)
	}
	return c.do(req)
}
