package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lunchbot_orders_placed_total",
		Help: "Total number of orders successfully persisted.",
	})

	OrdersCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lunchbot_orders_cancelled_total",
		Help: "Total number of orders withdrawn by their owners.",
	})

	ReportsGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lunchbot_reports_generated_total",
		Help: "Total number of venue reports generated and queued for delivery.",
	})

	ReportTickErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lunchbot_report_tick_errors_total",
		Help: "Total number of per-venue failures inside report cycle ticks.",
	},
		[]string{"reason"},
	)

	DeliveryFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lunchbot_delivery_failures_total",
		Help: "Total number of failed outbound message deliveries.",
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lunchbot_active_sessions",
		Help: "Current number of in-progress order sessions.",
	})
)
