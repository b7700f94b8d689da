package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "healthlock_sessions_active",
		Help: "Number of live in-memory sessions.",
	})

	filesUploadedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healthlock_files_uploaded_total",
		Help: "Health files added through uploads.",
	})

	tokensIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthlock_tokens_issued_total",
			Help: "Access tokens issued, by access level.",
		},
		[]string{"access_level"},
	)

	recordAccessTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healthlock_record_access_total",
		Help: "Simulated token scans that marked a token used.",
	})
)
