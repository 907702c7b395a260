// Package metrics exposes Prometheus counters for booking outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the booking engine.
type Metrics struct {
	BookingsCreated prometheus.Counter
	RoomChanges     prometheus.Counter
	Rejections      *prometheus.CounterVec
}

// New registers and returns the booking metrics.
func New() *Metrics {
	return &Metrics{
		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "booking_created_total",
			Help: "Total number of successfully created bookings",
		}),

		RoomChanges: promauto.NewCounter(prometheus.CounterOpts{
			Name: "booking_room_changes_total",
			Help: "Total number of successful room changes",
		}),

		Rejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_rejections_total",
			Help: "Total number of rejected booking requests by reason",
		}, []string{"reason"}),
	}
}

// NewUnregistered returns metrics backed by a throwaway registry, for use
// in tests that construct the service more than once per process.
func NewUnregistered() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_created_total",
			Help: "Total number of successfully created bookings",
		}),
		RoomChanges: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_room_changes_total",
			Help: "Total number of successful room changes",
		}),
		Rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_rejections_total",
			Help: "Total number of rejected booking requests by reason",
		}, []string{"reason"}),
	}
}
