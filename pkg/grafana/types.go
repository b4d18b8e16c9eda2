package grafana

import (
	"context"
)

type Interface interface {
	Health() HealthInterface
	Datasources() DatasourcesInterface
	Dashboards() DashboardsInterface
}

type HealthInterface interface {
	Check(ctx context.Context) (*Response, error)
}

type DatasourcesInterface interface {
	List(ctx context.Context) (*Response, error)
	Create(ctx context.Context, datasource Payload) (*Response, error)
}

type DashboardsInterface interface {
	Search(ctx context.Context, query DashboardSearchQuery) (*Response, error)
	Update(ctx context.Context, dashboard Payload) (*Response, error)
}

type DashboardSearchQuery struct {
	Type  string
	Query string
	Tags  []string
}

type GrafanaClient struct {
	health      HealthInterface
	datasources DatasourcesInterface
	dashboards  DashboardsInterface
}

func (c GrafanaClient) Health() HealthInterface {
	return c.health
}

func (c GrafanaClient) Datasources() DatasourcesInterface {
	return c.datasources
}

func (c GrafanaClient) Dashboards() DashboardsInterface {
	return c.dashboards
}
