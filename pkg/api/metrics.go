package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingress metrics, labelled by alert source. Rejections carry the reason
// (bad_signature, queue_full, invalid).
var (
	ingressAccepted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vigil_ingress_alerts_accepted_total",
		Help: "Alerts accepted by webhook ingress that opened a new incident.",
	}, []string{"source"})

	ingressDeduplicated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vigil_ingress_alerts_deduplicated_total",
		Help: "Alerts absorbed into an existing incident by fingerprint dedup.",
	}, []string{"source"})

	ingressRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vigil_ingress_alerts_rejected_total",
		Help: "Alerts rejected at ingress, by reason.",
	}, []string{"source", "reason"})
)
