// Package metrics expõe os contadores Prometheus da aplicação.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RemoteFailures falhas de chamada ao backend (transporte ou não-2xx).
	RemoteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gestor_estoque_remote_failures_total",
		Help: "Falhas de chamadas ao backend autoritativo.",
	})

	// DegradedWrites mutações aplicadas apenas no cache local (modo degradado).
	DegradedWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gestor_estoque_degraded_writes_total",
		Help: "Mutações que caíram no fallback local por indisponibilidade da API.",
	})

	// Movements movimentações de estoque aceitas, por tipo (ENTRADA/SAIDA).
	Movements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gestor_estoque_movements_total",
		Help: "Movimentações de estoque registradas.",
	}, []string{"tipo"})
)
