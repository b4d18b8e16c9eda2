package presets

import "mbenabda.com/grafana-workflows/pkg/grafana"

const schemaVersion = 38

func Dashboards() *Registry {
	return New(
		Entry{Name: "simple", Builder: SimpleDashboard},
		Entry{Name: "overview", Builder: OverviewDashboard},
	)
}

type panelSpec struct {
	title    string
	kind     string
	scenario string
}

// SimpleDashboard has a single random walk panel.
func SimpleDashboard() grafana.Payload {
	return dashboard("Sample Dashboard", []string{"sample"}, []panelSpec{
		{"Random Walk", "timeseries", "random_walk"},
	})
}

// OverviewDashboard lays out six TestData scenarios two per row.
func OverviewDashboard() grafana.Payload {
	return dashboard("TestData Overview", []string{"sample", "overview"}, []panelSpec{
		{"Random Walk", "timeseries", "random_walk"},
		{"Predictable Pulse", "timeseries", "predictable_pulse"},
		{"CSV Metric Values", "timeseries", "csv_metric_values"},
		{"Random Walk Table", "table", "random_walk_table"},
		{"Logs", "logs", "logs"},
		{"No Data Points", "stat", "no_data_points"},
	})
}

func dashboard(title string, tags []string, specs []panelSpec) grafana.Payload {
	panels := make([]interface{}, 0, len(specs))
	for i, s := range specs {
		panels = append(panels, panel(i+1, s, 12*(i%2), 8*(i/2)))
	}

	return grafana.Payload{
		"dashboard": map[string]interface{}{
			"title":         title,
			"tags":          tags,
			"timezone":      "browser",
			"panels":        panels,
			"schemaVersion": schemaVersion,
		},
		"overwrite": true,
	}
}

func panel(id int, s panelSpec, x, y int) map[string]interface{} {
	return map[string]interface{}{
		"id":    id,
		"title": s.title,
		"type":  s.kind,
		"gridPos": map[string]interface{}{
			"x": x,
			"y": y,
			"w": 12,
			"h": 8,
		},
		"datasource": map[string]interface{}{
			"type": "testdata",
			"uid":  "testdata",
		},
		"targets": []interface{}{
			map[string]interface{}{"refId": "A", "scenarioId": s.scenario},
		},
	}
}
