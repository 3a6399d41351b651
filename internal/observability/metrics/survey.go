// Package metrics provides Prometheus metric collectors for observability
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SurveyMetrics contains Prometheus metrics for the statistics pipeline
type SurveyMetrics struct {
	registry *prometheus.Registry

	// Computation metrics
	statsComputationsTotal   *prometheus.CounterVec
	statsComputationDuration *prometheus.HistogramVec
	statsRowsReturned        *prometheus.HistogramVec

	// Cache metrics
	cacheOperationsTotal *prometheus.CounterVec

	// Dataset metrics
	datasetRecordsGauge prometheus.Gauge
	datasetSpeciesGauge prometheus.Gauge
}

// NewSurveyMetrics creates and registers new survey pipeline metrics
func NewSurveyMetrics(registry *prometheus.Registry) (*SurveyMetrics, error) {
	m := &SurveyMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *SurveyMetrics) initMetrics() {
	m.statsComputationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survey_computations_total",
			Help: "Total number of statistics pipeline computations",
		},
		[]string{"operation"}, // operation: stats, band, map_frames, timeseries
	)

	m.statsComputationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "survey_computation_duration_seconds",
			Help:    "Time taken for statistics pipeline computations",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 6),
		},
		[]string{"operation"},
	)

	m.statsRowsReturned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "survey_rows_returned",
			Help:    "Result row counts of statistics pipeline computations",
			Buckets: prometheus.LinearBuckets(0, 4, 8),
		},
		[]string{"operation"},
	)

	m.cacheOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "survey_cache_operations_total",
			Help: "Derived view cache hits and misses",
		},
		[]string{"operation", "result"}, // result: hit, miss
	)

	m.datasetRecordsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "survey_dataset_records",
			Help: "Number of count records loaded at startup",
		},
	)

	m.datasetSpeciesGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "survey_dataset_species",
			Help: "Number of distinct species in the dataset",
		},
	)
}

func (m *SurveyMetrics) getCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.statsComputationsTotal,
		m.statsComputationDuration,
		m.statsRowsReturned,
		m.cacheOperationsTotal,
		m.datasetRecordsGauge,
		m.datasetSpeciesGauge,
	}
}

// Describe implements the Collector interface
func (m *SurveyMetrics) Describe(ch chan<- *prometheus.Desc) {
	for _, collector := range m.getCollectors() {
		collector.Describe(ch)
	}
}

// Collect implements the Collector interface
func (m *SurveyMetrics) Collect(ch chan<- prometheus.Metric) {
	for _, collector := range m.getCollectors() {
		collector.Collect(ch)
	}
}

// RecordComputation records one statistics pipeline computation
func (m *SurveyMetrics) RecordComputation(operation string, duration float64, rows int) {
	m.statsComputationsTotal.WithLabelValues(operation).Inc()
	m.statsComputationDuration.WithLabelValues(operation).Observe(duration)
	m.statsRowsReturned.WithLabelValues(operation).Observe(float64(rows))
}

// RecordCacheHit records a derived view cache hit
func (m *SurveyMetrics) RecordCacheHit(operation string) {
	m.cacheOperationsTotal.WithLabelValues(operation, "hit").Inc()
}

// RecordCacheMiss records a derived view cache miss
func (m *SurveyMetrics) RecordCacheMiss(operation string) {
	m.cacheOperationsTotal.WithLabelValues(operation, "miss").Inc()
}

// SetDatasetSize records the loaded dataset dimensions
func (m *SurveyMetrics) SetDatasetSize(records, species int) {
	m.datasetRecordsGauge.Set(float64(records))
	m.datasetSpeciesGauge.Set(float64(species))
}
