package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "galactictrader"
	// Subsystem for core game metrics
	subsystem = "core"
)

// Registry is the Prometheus registry for all game metrics; nil when
// metrics are disabled
var Registry *prometheus.Registry

// InitRegistry creates the global registry. Call once from the composition
// root before registering collectors.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GameMetricsRecorder is the interface application handlers record through.
// A nil recorder is valid and drops everything.
type GameMetricsRecorder interface {
	RecordTrade(resource string, buying bool, rejected bool)
	RecordEncounter(eventType string)
	RecordEncounterResolution(action string, success bool)
	RecordMissionTransition(missionType, status string)
	RecordUpgrade(component string, rejected bool)
}

// GameMetricsCollector implements GameMetricsRecorder with Prometheus
// counters
type GameMetricsCollector struct {
	tradesTotal      *prometheus.CounterVec
	encountersTotal  *prometheus.CounterVec
	resolutionsTotal *prometheus.CounterVec
	missionsTotal    *prometheus.CounterVec
	upgradesTotal    *prometheus.CounterVec
}

// NewGameMetricsCollector creates the collector with all counter families
func NewGameMetricsCollector() *GameMetricsCollector {
	return &GameMetricsCollector{
		tradesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trades_total",
				Help:      "Trades by resource, direction and acceptance",
			},
			[]string{"resource", "direction", "status"},
		),
		encountersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "encounters_total",
				Help:      "Random encounters generated by type",
			},
			[]string{"type"},
		),
		resolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "encounter_resolutions_total",
				Help:      "Encounter resolutions by action and result",
			},
			[]string{"action", "result"},
		),
		missionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "mission_transitions_total",
				Help:      "Mission lifecycle transitions by type and new status",
			},
			[]string{"mission_type", "status"},
		),
		upgradesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "component_upgrades_total",
				Help:      "Ship component upgrades by component type and acceptance",
			},
			[]string{"component", "status"},
		),
	}
}

// Register registers all counters with the Prometheus registry
func (c *GameMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	collectors := []prometheus.Collector{
		c.tradesTotal,
		c.encountersTotal,
		c.resolutionsTotal,
		c.missionsTotal,
		c.upgradesTotal,
	}
	for _, collector := range collectors {
		if err := Registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

func (c *GameMetricsCollector) RecordTrade(resource string, buying bool, rejected bool) {
	direction := "sell"
	if buying {
		direction = "buy"
	}
	status := "accepted"
	if rejected {
		status = "rejected"
	}
	c.tradesTotal.WithLabelValues(resource, direction, status).Inc()
}

func (c *GameMetricsCollector) RecordEncounter(eventType string) {
	c.encountersTotal.WithLabelValues(eventType).Inc()
}

func (c *GameMetricsCollector) RecordEncounterResolution(action string, success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	c.resolutionsTotal.WithLabelValues(action, result).Inc()
}

func (c *GameMetricsCollector) RecordMissionTransition(missionType, status string) {
	c.missionsTotal.WithLabelValues(missionType, status).Inc()
}

func (c *GameMetricsCollector) RecordUpgrade(component string, rejected bool) {
	status := "accepted"
	if rejected {
		status = "rejected"
	}
	c.upgradesTotal.WithLabelValues(component, status).Inc()
}

// NoopRecorder drops all metrics; used when metrics are disabled
type NoopRecorder struct{}

func (NoopRecorder) RecordTrade(resource string, buying bool, rejected bool)  {}
func (NoopRecorder) RecordEncounter(eventType string)                         {}
func (NoopRecorder) RecordEncounterResolution(action string, success bool)    {}
func (NoopRecorder) RecordMissionTransition(missionType, status string)       {}
func (NoopRecorder) RecordUpgrade(component string, rejected bool)            {}
