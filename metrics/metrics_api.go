package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuthSignup = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_auth_signup",
			Help: "The total number of signup attempts",
		},
		[]string{"result"},
	)
	AuthLogin = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_auth_login",
			Help: "The total number of login attempts",
		},
		[]string{"result"},
	)
	DonationCreate = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_donation_create",
			Help: "The total number of donated item submissions",
		},
		[]string{"result"},
	)
	DonationModerate = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_donation_moderate",
			Help: "The total number of admin approve/deny decisions",
		},
		[]string{"action", "result"},
	)
	CatalogSync = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_catalog_sync",
			Help: "The total number of catalog file syncs after approval",
		},
		[]string{"result"},
	)
)
