package presets

import "mbenabda.com/grafana-workflows/pkg/grafana"

const DefaultPrometheusURL = "http://localhost:9090"

func Datasources() *Registry {
	return New(
		Entry{Name: "testdata", Builder: TestDataDatasource},
		Entry{Name: "prometheus", Builder: func() grafana.Payload { return PrometheusDatasource("") }},
	)
}

// TestDataDatasource is Grafana's built-in synthetic data source.
func TestDataDatasource() grafana.Payload {
	return grafana.Payload{
		"name":      "TestData",
		"type":      "testdata",
		"access":    "proxy",
		"isDefault": true,
	}
}

// PrometheusDatasource points at url, or DefaultPrometheusURL when url is
// empty.
func PrometheusDatasource(url string) grafana.Payload {
	if url == "" {
		url = DefaultPrometheusURL
	}
	return grafana.Payload{
		"name":      "Prometheus",
		"type":      "prometheus",
		"access":    "proxy",
		"url":       url,
		"isDefault": false,
	}
}
