// Package operations wraps each Grafana API call so that its outcome is
// returned as a result.Result instead of an error.
package operations

import (
	"context"
	"fmt"

	"mbenabda.com/grafana-workflows/pkg/grafana"
	"mbenabda.com/grafana-workflows/pkg/result"
)

// Safe runs call once and converts both a returned error and a panic into an
// Err result.
func Safe[T any](call func() (T, error)) (res result.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			res = result.Err[T](result.ErrorInfo{
				Message: fmt.Sprintf("panic: %v", err),
				Cause:   err,
			})
		}
	}()

	return result.From(call())
}

func GetHealth(ctx context.Context, client grafana.Interface) result.Result[*grafana.Response] {
	return Safe(func() (*grafana.Response, error) {
		return client.Health().Check(ctx)
	})
}

func ListDatasources(ctx context.Context, client grafana.Interface) result.Result[*grafana.Response] {
	return Safe(func() (*grafana.Response, error) {
		return client.Datasources().List(ctx)
	})
}

func CreateDatasource(ctx context.Context, client grafana.Interface, datasource grafana.Payload) result.Result[*grafana.Response] {
	return Safe(func() (*grafana.Response, error) {
		return client.Datasources().Create(ctx, datasource)
	})
}

func ListDashboards(ctx context.Context, client grafana.Interface) result.Result[*grafana.Response] {
	return Safe(func() (*grafana.Response, error) {
		return client.Dashboards().Search(ctx, grafana.DashboardSearchQuery{})
	})
}

func CreateDashboard(ctx context.Context, client grafana.Interface, dashboard grafana.Payload) result.Result[*grafana.Response] {
	return Safe(func() (*grafana.Response, error) {
		return client.Dashboards().Update(ctx, dashboard)
	})
}
