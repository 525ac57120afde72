package bni

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// provisionOutcomesTotal терминальные исходы обработки заявок. Метка outcome:
// success / gateway_error / transport_error / rejected (отклонено до вызова шлюза).
var provisionOutcomesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "ecollect",
		Subsystem: "bni",
		Name:      "provision_outcomes_total",
		Help:      "Terminal virtual account provisioning outcomes.",
	},
	[]string{"outcome"},
)

const outcomeLabelRejected = "rejected"
