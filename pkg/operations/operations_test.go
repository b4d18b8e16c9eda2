package operations_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbenabda.com/grafana-workflows/pkg/grafana"
	"mbenabda.com/grafana-workflows/pkg/grafana/grafanatest"
	"mbenabda.com/grafana-workflows/pkg/operations"
)

func TestSafeCapturesError(t *testing.T) {
	cause := errors.New("connection refused")
	r := operations.Safe(func() (int, error) { return 0, cause })

	info, isErr := r.Error()
	require.True(t, isErr)
	assert.Equal(t, "connection refused", info.Message)
	assert.ErrorIs(t, info, cause)
}

func TestSafeCapturesPanic(t *testing.T) {
	var r interface{ IsErr() bool }
	assert.NotPanics(t, func() {
		r = operations.Safe(func() (int, error) { panic("nil map") })
	})
	assert.True(t, r.IsErr())
}

func TestSafePassesValue(t *testing.T) {
	r := operations.Safe(func() (string, error) { return "ok", nil })
	assert.Equal(t, "ok", r.Unwrap())
}

func TestEachOperationMakesExactlyOneCall(t *testing.T) {
	ctx := context.Background()
	payload := grafana.Payload{"name": "x"}

	tests := []struct {
		name   string
		run    func(grafana.Interface)
		method string
	}{
		{"health", func(c grafana.Interface) { operations.GetHealth(ctx, c) }, "Health.Check"},
		{"list datasources", func(c grafana.Interface) { operations.ListDatasources(ctx, c) }, "Datasources.List"},
		{"create datasource", func(c grafana.Interface) { operations.CreateDatasource(ctx, c, payload) }, "Datasources.Create"},
		{"list dashboards", func(c grafana.Interface) { operations.ListDashboards(ctx, c) }, "Dashboards.Search"},
		{"create dashboard", func(c grafana.Interface) { operations.CreateDashboard(ctx, c, payload) }, "Dashboards.Update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &grafanatest.Fake{}
			tt.run(fake)
			assert.Equal(t, []string{tt.method}, fake.Methods())
		})
	}
}

func TestOperationPassesResponseThrough(t *testing.T) {
	body := grafana.NewResponse(map[string]interface{}{"database": "ok"})
	fake := &grafanatest.Fake{
		HealthFunc: func(ctx context.Context) (*grafana.Response, error) { return body, nil },
	}

	r := operations.GetHealth(context.Background(), fake)
	v, ok := r.Value()
	require.True(t, ok)
	assert.Same(t, body, v)
}

func TestOperationConvertsFailure(t *testing.T) {
	fake := &grafanatest.Fake{
		CreateDatasourceFunc: func(ctx context.Context, p grafana.Payload) (*grafana.Response, error) {
			return nil, &grafana.APIError{StatusCode: 500, Status: "500 Internal Server Error", Message: "db locked"}
		},
	}

	r := operations.CreateDatasource(context.Background(), fake, grafana.Payload{"name": "TestData"})
	info, isErr := r.Error()
	require.True(t, isErr)
	assert.Contains(t, info.Message, "db locked")

	var apiErr *grafana.APIError
	assert.True(t, errors.As(info, &apiErr))
	assert.Equal(t, grafana.Payload{"name": "TestData"}, fake.LastPayload("Datasources.Create"))
}

func TestOperationRecoversTransportPanic(t *testing.T) {
	fake := &grafanatest.Fake{
		SearchFunc: func(ctx context.Context, q grafana.DashboardSearchQuery) (*grafana.Response, error) {
			var m map[string]int
			m["boom"] = 1
			return nil, nil
		},
	}

	r := operations.ListDashboards(context.Background(), fake)
	info, isErr := r.Error()
	require.True(t, isErr)
	assert.Contains(t, info.Message, "panic")
}
