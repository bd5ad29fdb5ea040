// Package dbstats exports database/sql connection pool gauges to Prometheus.
// Query-level instrumentation stays out of the hot path: repositories talk to
// the pool directly and only the pool stats are sampled on a ticker.
package dbstats

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultSampleInterval = 10 * time.Second

// Collector samples sql.DBStats into Prometheus gauges.
type Collector struct {
	openConnections prometheus.Gauge
	inUse           prometheus.Gauge
	idle            prometheus.Gauge
	waitCount       prometheus.Gauge
	waitDuration    prometheus.Gauge
}

// NewCollector registers the connection pool gauges for the given service name.
func NewCollector(serviceName string) *Collector {
	labels := prometheus.Labels{"service": serviceName}

	return &Collector{
		openConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_open_connections", Help: "Open connections in the pool.", ConstLabels: labels,
		}),
		inUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_in_use", Help: "Connections currently in use.", ConstLabels: labels,
		}),
		idle: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_idle", Help: "Idle connections in the pool.", ConstLabels: labels,
		}),
		waitCount: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_wait_count_total", Help: "Total connections waited for.", ConstLabels: labels,
		}),
		waitDuration: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_wait_duration_seconds_total", Help: "Total time blocked waiting for a connection.", ConstLabels: labels,
		}),
	}
}

// Watch samples db.Stats() every interval until stopCh is closed.
// Pass interval <= 0 to use the default.
func (c *Collector) Watch(db *sql.DB, interval time.Duration, stopCh <-chan struct{}) {
	if interval <= 0 {
		interval = defaultSampleInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.sample(db.Stats())
			case <-stopCh:
				return
			}
		}
	}()
}

func (c *Collector) sample(s sql.DBStats) {
	c.openConnections.Set(float64(s.OpenConnections))
	c.inUse.Set(float64(s.InUse))
	c.idle.Set(float64(s.Idle))
	c.waitCount.Set(float64(s.WaitCount))
	c.waitDuration.Set(s.WaitDuration.Seconds())
}
