// Package grafanatest provides an in-memory grafana.Interface for tests.
package grafanatest

import (
	"context"

	"mbenabda.com/grafana-workflows/pkg/grafana"
)

// Call records one invocation made against a Fake.
type Call struct {
	Method  string
	Payload grafana.Payload
}

// Fake answers every call with the configured func, or with an empty object
// when the func is nil.
type Fake struct {
	HealthFunc           func(ctx context.Context) (*grafana.Response, error)
	ListDatasourcesFunc  func(ctx context.Context) (*grafana.Response, error)
	CreateDatasourceFunc func(ctx context.Context, p grafana.Payload) (*grafana.Response, error)
	SearchFunc           func(ctx context.Context, q grafana.DashboardSearchQuery) (*grafana.Response, error)
	UpdateDashboardFunc  func(ctx context.Context, p grafana.Payload) (*grafana.Response, error)

	Calls []Call
}

func (f *Fake) record(method string, p grafana.Payload) {
	f.Calls = append(f.Calls, Call{Method: method, Payload: p})
}

// Methods returns the recorded method names in call order.
func (f *Fake) Methods() []string {
	methods := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		methods = append(methods, c.Method)
	}
	return methods
}

// LastPayload returns the payload of the most recent call to method.
func (f *Fake) LastPayload(method string) grafana.Payload {
	for i := len(f.Calls) - 1; i >= 0; i-- {
		if f.Calls[i].Method == method {
			return f.Calls[i].Payload
		}
	}
	return nil
}

func empty() (*grafana.Response, error) {
	return grafana.NewResponse(map[string]interface{}{}), nil
}

func (f *Fake) Health() grafana.HealthInterface           { return fakeHealth{f} }
func (f *Fake) Datasources() grafana.DatasourcesInterface { return fakeDatasources{f} }
func (f *Fake) Dashboards() grafana.DashboardsInterface   { return fakeDashboards{f} }

type fakeHealth struct{ f *Fake }

func (h fakeHealth) Check(ctx context.Context) (*grafana.Response, error) {
	h.f.record("Health.Check", nil)
	if h.f.HealthFunc == nil {
		return empty()
	}
	return h.f.HealthFunc(ctx)
}

type fakeDatasources struct{ f *Fake }

func (d fakeDatasources) List(ctx context.Context) (*grafana.Response, error) {
	d.f.record("Datasources.List", nil)
	if d.f.ListDatasourcesFunc == nil {
		return grafana.NewResponse([]interface{}{}), nil
	}
	return d.f.ListDatasourcesFunc(ctx)
}

func (d fakeDatasources) Create(ctx context.Context, p grafana.Payload) (*grafana.Response, error) {
	d.f.record("Datasources.Create", p)
	if d.f.CreateDatasourceFunc == nil {
		return empty()
	}
	return d.f.CreateDatasourceFunc(ctx, p)
}

type fakeDashboards struct{ f *Fake }

func (d fakeDashboards) Search(ctx context.Context, q grafana.DashboardSearchQuery) (*grafana.Response, error) {
	d.f.record("Dashboards.Search", nil)
	if d.f.SearchFunc == nil {
		return grafana.NewResponse([]interface{}{}), nil
	}
	return d.f.SearchFunc(ctx, q)
}

func (d fakeDashboards) Update(ctx context.Context, p grafana.Payload) (*grafana.Response, error) {
	d.f.record("Dashboards.Update", p)
	if d.f.UpdateDashboardFunc == nil {
		return empty()
	}
	return d.f.UpdateDashboardFunc(ctx, p)
}
