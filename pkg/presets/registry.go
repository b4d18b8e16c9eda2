// Package presets provides named builders for datasource and dashboard
// payloads.
package presets

import (
	"mbenabda.com/grafana-workflows/pkg/grafana"
)

const (
	DefaultDatasource = "testdata"
	DefaultDashboard  = "simple"
)

// Builder produces a fresh payload on every call.
type Builder func() grafana.Payload

type Entry struct {
	Name    string
	Builder Builder
}

// Registry maps preset names to builders. It is not modified after New.
type Registry struct {
	builders map[string]Builder
	names    []string
}

// New builds a registry from entries, keeping their order. A later entry
// with an already used name replaces the builder but keeps the first
// position.
func New(entries ...Entry) *Registry {
	r := &Registry{
		builders: make(map[string]Builder, len(entries)),
	}
	for _, e := range entries {
		if _, exists := r.builders[e.Name]; !exists {
			r.names = append(r.names, e.Name)
		}
		r.builders[e.Name] = e.Builder
	}
	return r
}

func (r *Registry) Get(name string) (Builder, bool) {
	if r == nil {
		return nil, false
	}
	b, ok := r.builders[name]
	return b, ok
}

func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names lists preset names in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Build resolves name, falling back to the fallback preset when name is
// unknown. The second return value reports whether name itself was found.
func (r *Registry) Build(name, fallback string) (grafana.Payload, bool) {
	if b, ok := r.Get(name); ok {
		return b(), true
	}
	if b, ok := r.Get(fallback); ok {
		return b(), false
	}
	return grafana.Payload{}, false
}
