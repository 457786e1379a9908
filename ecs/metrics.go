package ecs

import "github.com/prometheus/client_golang/prometheus"

// Metrics is an optional Prometheus collector for registry activity.
// Wiring it costs one counter increment per Emplace/Remove/Create/
// Destroy call and nothing else; a Registry with no Metrics attached
// never touches prometheus at all.
type Metrics struct {
	entities            prometheus.GaugeFunc
	entitiesCreated     prometheus.Counter
	entitiesDestroyed   prometheus.Counter
	componentsEmplaced  prometheus.Counter
	componentsRemoved   prometheus.Counter
}

// NewMetrics constructs and registers a Metrics collector against reg
// for registry r, using namespace/subsystem labels the way
// AKJUS-bsc-erigon's service layer names its prometheus collectors.
func NewMetrics(reg prometheus.Registerer, r *Registry) *Metrics {
	m := &Metrics{
		entities: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "ecs",
			Name:      "live_entities",
			Help:      "Number of currently live entities.",
		}, func() float64 { return float64(r.Size()) }),
		entitiesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ecs",
			Name:      "entities_created_total",
			Help:      "Total number of entities created.",
		}),
		entitiesDestroyed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ecs",
			Name:      "entities_destroyed_total",
			Help:      "Total number of entities destroyed.",
		}),
		componentsEmplaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ecs",
			Name:      "components_emplaced_total",
			Help:      "Total number of component emplace calls across every pool.",
		}),
		componentsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ecs",
			Name:      "components_removed_total",
			Help:      "Total number of component remove calls across every pool.",
		}),
	}

	reg.MustRegister(
		m.entities,
		m.entitiesCreated,
		m.entitiesDestroyed,
		m.componentsEmplaced,
		m.componentsRemoved,
	)
	return m
}
