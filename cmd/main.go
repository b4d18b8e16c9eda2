package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"mbenabda.com/grafana-workflows/pkg/config"
	"mbenabda.com/grafana-workflows/pkg/grafana"
	"mbenabda.com/grafana-workflows/pkg/presets"
	"mbenabda.com/grafana-workflows/pkg/workflow"
)

// flagValues holds what was given on the command line. Empty values leave
// the configuration untouched.
type flagValues struct {
	ConfigFile       string
	URL              string
	APIKey           string
	Username         string
	Password         string
	Timeout          time.Duration
	DatasourcePreset string
	DashboardPreset  string
	LogLevel         string
	DryRun           bool
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain runs the command line and returns the process exit code. Failed
// workflow steps still exit 0; only configuration and client errors don't.
func realMain(args []string, stdout, stderr io.Writer) int {
	flags := &flagValues{}
	var listPresets bool

	app := kingpin.New("grafana-workflows", "Exercises the Grafana HTTP API: health, datasources and dashboards").
		UsageWriter(stderr).
		ErrorWriter(stderr)

	app.Flag("config", "path to a YAML configuration file").
		Envar("GRAFANA_WORKFLOWS_CONFIG").
		ExistingFileVar(&flags.ConfigFile)

	app.Flag("grafana-url", "url to grafana. defaults to http://localhost:3000").
		Envar("GRAFANA_URL").
		StringVar(&flags.URL)

	app.Flag("grafana-api-key", "grafana API Key").
		Envar("GRAFANA_API_KEY").
		StringVar(&flags.APIKey)

	app.Flag("grafana-user", "grafana User name (Basic Auth). defaults to admin").
		Envar("GRAFANA_BASIC_AUTH_USERNAME").
		StringVar(&flags.Username)

	app.Flag("grafana-password", "grafana User password (Basic Auth). defaults to admin").
		Envar("GRAFANA_BASIC_AUTH_PASSWORD").
		StringVar(&flags.Password)

	app.Flag("timeout", "timeout of each grafana API call").
		Envar("GRAFANA_TIMEOUT").
		DurationVar(&flags.Timeout)

	app.Flag("datasource-preset", "datasource preset to create").
		PlaceHolder(presets.DefaultDatasource).
		StringVar(&flags.DatasourcePreset)

	app.Flag("log-level", "one of debug, info, warning, error").
		Envar("LOG_LEVEL").
		StringVar(&flags.LogLevel)

	app.Flag("dry-run", "do not perform write operations against grafana api").
		Envar("DRY_RUN").
		BoolVar(&flags.DryRun)

	app.Flag("list-presets", "list the available presets and exit").
		BoolVar(&listPresets)

	app.Arg("preset", "dashboard preset to create").
		StringVar(&flags.DashboardPreset)

	if _, err := app.Parse(args); err != nil {
		errorLogger(stderr).Error(err)
		app.Usage(args)
		return 1
	}

	datasources := presets.Datasources()
	dashboards := presets.Dashboards()

	if listPresets {
		printPresets(stdout, datasources, dashboards)
		return 0
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		errorLogger(stderr).Errorf("invalid configuration : %v", err)
		app.Usage(args)
		return 1
	}

	if err := checkPreset(dashboards, cfg.Presets.Dashboard); err != nil {
		errorLogger(stderr).Error(err)
		app.Usage(args)
		return 1
	}

	logger := newLogger(cfg.LogLevel, stderr)

	client, err := buildGrafanaClient(cfg, logger)
	if err != nil {
		errorLogger(stderr).Errorf("could not build a grafana client : %v", err)
		app.Usage(args)
		return 1
	}

	logger.Infof("[ dry-run = %v ] running against %v", cfg.DryRun, cfg.Grafana.URL)

	runner := workflow.NewRunner(client, datasources, dashboards,
		workflow.WithDatasourcePreset(cfg.Presets.Datasource),
		workflow.WithLogger(log.NewEntry(logger)),
	)

	if err := run(runner, cfg.Presets.Dashboard, stdout, logger); err != nil {
		logger.Errorf("Unhandled error received. Exiting... : %v", err)
		return 1
	}
	return 0
}

func loadConfig(flags *flagValues) (config.Config, error) {
	cfg := config.Default()
	if flags.ConfigFile != "" {
		var err error
		cfg, err = config.Load(flags.ConfigFile)
		if err != nil {
			return cfg, err
		}
	}

	override := func(dst *string, val string) {
		if val != "" {
			*dst = val
		}
	}
	override(&cfg.Grafana.URL, flags.URL)
	override(&cfg.Grafana.APIKey, flags.APIKey)
	override(&cfg.Grafana.Username, flags.Username)
	override(&cfg.Grafana.Password, flags.Password)
	override(&cfg.Presets.Datasource, flags.DatasourcePreset)
	override(&cfg.Presets.Dashboard, flags.DashboardPreset)
	override(&cfg.LogLevel, flags.LogLevel)
	if flags.Timeout > 0 {
		cfg.Grafana.Timeout = flags.Timeout
	}
	cfg.DryRun = cfg.DryRun || flags.DryRun

	return cfg, cfg.Validate()
}

// checkPreset rejects names the registry does not know. The workflow itself
// would silently fall back to the default preset.
func checkPreset(registry *presets.Registry, name string) error {
	if registry.Has(name) {
		return nil
	}
	return fmt.Errorf("unknown preset '%s'. available presets: %s", name, strings.Join(registry.Names(), ", "))
}

func buildGrafanaClient(cfg config.Config, logger *log.Logger) (grafana.Interface, error) {
	u, err := cfg.GrafanaURL()
	if err != nil {
		return nil, err
	}
	httpClient := &http.Client{Timeout: cfg.Grafana.Timeout}

	var client grafana.Interface
	if cfg.Grafana.APIKey != "" {
		client, err = grafana.NewWithApiKeyAndClient(u, httpClient, cfg.Grafana.APIKey)
	} else {
		client, err = grafana.NewWithUserCredentialsAndClient(u, httpClient, cfg.Grafana.Username, cfg.Grafana.Password)
	}
	if err != nil {
		return nil, err
	}

	if cfg.DryRun {
		client = grafana.NewDryRun(client, logger.WithField("dry-run", true))
	}
	return client, nil
}

func run(runner *workflow.Runner, preset string, out io.Writer, logger *log.Logger) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg, ctx := errgroup.WithContext(ctx)

	var steps []workflow.Step
	wg.Go(func() error {
		defer cancel()
		steps = runner.Run(ctx, preset)
		return nil
	})

	wg.Go(func() error {
		select {
		case s := <-sig:
			logger.Warnf("received %v signal. Cancelling pending calls", s)
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	if err := wg.Wait(); err != nil {
		return err
	}
	return workflow.Report(out, steps)
}

func printPresets(out io.Writer, datasources, dashboards *presets.Registry) {
	fmt.Fprintf(out, "datasources: %s\n", strings.Join(datasources.Names(), ", "))
	fmt.Fprintf(out, "dashboards:  %s\n", strings.Join(dashboards.Names(), ", "))
}

func newLogger(level string, out io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

func errorLogger(out io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	return logger
}
