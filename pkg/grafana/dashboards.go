package grafana

import (
	"context"
	"fmt"
	"net/url"
)

const dashboardsPath = "api/dashboards/db"
const searchPath = "api/search"

type DashboardsClient struct {
	clientBase
}

// Search lists dashboards and folders. Set query.Type to "dash-db" or
// "dash-folder" to get only one kind.
func (c DashboardsClient) Search(ctx context.Context, query DashboardSearchQuery) (*Response, error) {
	params := url.Values{}
	if query.Type != "" {
		params.Set("type", query.Type)
	}
	if query.Query != "" {
		params.Set("query", query.Query)
	}
	for _, tag := range query.Tags {
		params.Add("tag", tag)
	}

	req, err := c.newGetRequest(ctx, searchPath, params)
	if err != nil {
		return nil, fmt.Errorf("error while searching dashboards: %w", err)
	}
	return c.do(req)
}

// Update creates the dashboard, or replaces it when the payload sets
// "overwrite".
func (c DashboardsClient) Update(ctx context.Context, dashboard Payload) (*Response, error) {
	data, err := dashboard.marshalJSON()
	if err != nil {
		return nil, fmt.Errorf("could not marshal dashboard %v: %w", dashboard.Slug(), err)
	}
	req, err := c.newPostRequest(ctx, dashboardsPath, data)
	if err != nil {
		return nil, fmt.Errorf("error while updating dashboard %v: could not create request POST %s: %w", dashboard.Slug(), dashboardsPath, err)
	}
	return c.do(req)
}
