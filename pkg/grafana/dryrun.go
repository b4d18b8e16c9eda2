package grafana

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type dryRun struct {
	inner  Interface
	logger *log.Entry
}

// NewDryRun forwards reads to inner and only logs writes.
func NewDryRun(inner Interface, logger *log.Entry) Interface {
	return dryRun{inner: inner, logger: logger}
}

func (d dryRun) Health() HealthInterface {
	return d.inner.Health()
}

func (d dryRun) Datasources() DatasourcesInterface {
	return dryRunDatasources{d.inner.Datasources(), d.logger}
}

func (d dryRun) Dashboards() DashboardsInterface {
	return dryRunDashboards{d.inner.Dashboards(), d.logger}
}

type dryRunDatasources struct {
	DatasourcesInterface
	logger *log.Entry
}

func (d dryRunDatasources) Create(ctx context.Context, datasource Payload) (*Response, error) {
	d.logger.Infof("created datasource %v", datasource.Title())
	return dryRunResponse(datasource), nil
}

type dryRunDashboards struct {
	DashboardsInterface
	logger *log.Entry
}

func (d dryRunDashboards) Update(ctx context.Context, dashboard Payload) (*Response, error) {
	d.logger.Infof("updated dashboard %v", dashboard.Slug())
	return dryRunResponse(dashboard), nil
}

func dryRunResponse(p Payload) *Response {
	return NewResponse(map[string]interface{}{
		"message": "dry-run",
		"slug":    p.Slug(),
	})
}
