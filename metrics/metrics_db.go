package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DbUserInsert = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_db_user_insert",
			Help: "User insert",
		},
		[]string{"result"},
	)
	DbUserFind = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_db_user_find",
			Help: "User find by email or id",
		},
		[]string{"result"},
	)
	DbItemPush = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_db_item_push",
			Help: "Donated item push onto a user",
		},
		[]string{"result"},
	)
	DbItemSetStatus = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_db_item_set_status",
			Help: "Donated item status update",
		},
		[]string{"result"},
	)
)

func result(err error) string {
	if err != nil {
		return "err"
	}
	return "ok"
}

// Observe is a small helper for the {result} label convention.
func Observe(c *prometheus.CounterVec, err error) {
	c.WithLabelValues(result(err)).Inc()
}
