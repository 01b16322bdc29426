// Package custompromauto holds the registry every ledgercheck metric is registered on, keeping the
// default process and go collectors out of the exported series.
package custompromauto

import (
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registry = prometheus.NewRegistry()
	auto     = promauto.With(registry)
)

// Auto returns the factory metrics are created with.
func Auto() promauto.Factory {
	return auto
}

// Registry returns the custom registry.
func Registry() *prometheus.Registry {
	return registry
}

// Counters gathers every counter series on the registry keyed as name{label="value",...},
// labels sorted by name.
func Counters() (map[string]float64, error) {
	families, err := registry.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if metric.GetCounter() == nil {
				continue
			}
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+`="`+label.GetValue()+`"`)
			}
			slices.Sort(labels)

			key := family.GetName()
			if len(labels) > 0 {
				key += "{" + strings.Join(labels, ",") + "}"
			}
			out[key] = metric.GetCounter().GetValue()
		}
	}

	return out, nil
}
