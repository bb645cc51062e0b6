package lifecycle

import (
	"github.com/bantaydagat/bantay-dagat-api/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_transitions_total",
			Help: "Report status transitions by source partition, target status and result",
		},
		[]string{"from", "to", "result"},
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_notifications_total",
			Help: "Notifications written to reporters",
		},
		[]string{"status"},
	)

	duplicatesGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "report_partition_duplicates",
			Help: "Report ids found in more than one partition by the last audit",
		},
	)
)

func recordTransition(from models.Partition, to string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	switch to {
	case models.StatusPending, models.StatusOngoing, models.StatusCompleted, models.StatusCancelled:
	default:
		// free-form in-place statuses would explode the label set
		to = "other"
	}
	transitionsTotal.WithLabelValues(string(from), to, result).Inc()
}
