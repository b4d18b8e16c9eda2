// Package workflow runs the fixed sequence of Grafana API calls and renders
// its outcome.
package workflow

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"mbenabda.com/grafana-workflows/pkg/grafana"
	"mbenabda.com/grafana-workflows/pkg/operations"
	"mbenabda.com/grafana-workflows/pkg/presets"
	"mbenabda.com/grafana-workflows/pkg/result"
)

const (
	LabelHealthCheck      = "Health Check"
	LabelDatasources      = "DataSources"
	LabelCreateDatasource = "Create DataSource"
	LabelDashboards       = "Dashboards"
	LabelCreateDashboard  = "Create Dashboard"
)

type Step struct {
	Label  string
	Result result.Result[*grafana.Response]
}

func (s Step) String() string {
	return Format(s.Label, s.Result)
}

type Runner struct {
	client           grafana.Interface
	datasources      *presets.Registry
	dashboards       *presets.Registry
	datasourcePreset string
	logger           *log.Entry
}

type Option func(*Runner)

// WithDatasourcePreset selects the datasource created by the workflow.
// Unknown names fall back to presets.DefaultDatasource.
func WithDatasourcePreset(name string) Option {
	return func(r *Runner) {
		r.datasourcePreset = name
	}
}

// WithLogger replaces the default logger. A nil logger is ignored.
func WithLogger(logger *log.Entry) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewRunner(client grafana.Interface, datasources, dashboards *presets.Registry, opts ...Option) *Runner {
	r := &Runner{
		client:           client,
		datasources:      datasources,
		dashboards:       dashboards,
		datasourcePreset: presets.DefaultDatasource,
		logger:           log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type stepFunc func(ctx context.Context, logger *log.Entry) result.Result[*grafana.Response]

// Run executes the five steps in order. Every step runs whatever the outcome
// of the previous ones.
func (r *Runner) Run(ctx context.Context, dashboardPreset string) []Step {
	logger := r.logger.WithField("run", uuid.NewString())

	plan := []struct {
		label string
		run   stepFunc
	}{
		{LabelHealthCheck, func(ctx context.Context, logger *log.Entry) result.Result[*grafana.Response] {
			return operations.GetHealth(ctx, r.client)
		}},
		{LabelDatasources, func(ctx context.Context, logger *log.Entry) result.Result[*grafana.Response] {
			return operations.ListDatasources(ctx, r.client)
		}},
		{LabelCreateDatasource, func(ctx context.Context, logger *log.Entry) result.Result[*grafana.Response] {
			datasource := r.resolve(logger, r.datasources, r.datasourcePreset, presets.DefaultDatasource)
			return AbsorbAlreadyExists(operations.CreateDatasource(ctx, r.client, datasource))
		}},
		{LabelDashboards, func(ctx context.Context, logger *log.Entry) result.Result[*grafana.Response] {
			return operations.ListDashboards(ctx, r.client)
		}},
		{LabelCreateDashboard, func(ctx context.Context, logger *log.Entry) result.Result[*grafana.Response] {
			dashboard := r.resolve(logger, r.dashboards, dashboardPreset, presets.DefaultDashboard)
			return operations.CreateDashboard(ctx, r.client, dashboard)
		}},
	}

	steps := make([]Step, 0, len(plan))
	for _, p := range plan {
		stepLogger := logger.WithField("step", p.label)
		stepLogger.Debug("running")

		res := p.run(ctx, stepLogger)
		if info, isErr := res.Error(); isErr {
			stepLogger.Warnf("failed: %s", info.Message)
		} else {
			stepLogger.Info("succeeded")
		}

		steps = append(steps, Step{Label: p.label, Result: res})
	}
	return steps
}

func (r *Runner) resolve(logger *log.Entry, registry *presets.Registry, name, fallback string) grafana.Payload {
	payload, found := registry.Build(name, fallback)
	switch {
	case found:
	case registry.Has(fallback):
		logger.Debugf("preset %q not found, using %q", name, fallback)
	default:
		logger.Warnf("neither preset %q nor %q is registered, sending an empty payload", name, fallback)
	}
	return payload
}
