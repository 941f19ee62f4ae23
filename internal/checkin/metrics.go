package checkin

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tadipaar_checkins_total",
		Help: "Hazari submissions by outcome",
	}, []string{"outcome"})

	sosAlerts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tadipaar_sos_alerts_total",
		Help: "SOS alerts raised",
	})

	geofenceEvalDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tadipaar_geofence_eval_duration_seconds",
		Help:    "Geofence evaluation latency",
		Buckets: prometheus.DefBuckets,
	})
)

const (
	outcomeClear     = "clear"
	outcomeViolation = "violation"
	outcomeThrottled = "throttled"
)
