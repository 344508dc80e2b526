// Package offline implementa o coordenador de sincronização: toda mutação
// tenta primeiro o backend autoritativo; em caso de sucesso o cache local é
// re-puxado (sobrescrita last-write-wins), em caso de falha remota a mutação
// equivalente é aplicada direto no cache e o chamador recebe o sinal de modo
// degradado. Exatamente um dos dois caminhos executa a mutação.
package offline

import (
	"context"
	"errors"

	"github.com/lubcarv/gestor-estoque/internal/domain"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/gateway"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/localcache"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/metrics"
	"github.com/lubcarv/gestor-estoque/pkg/logger"
)

// Mode indica qual caminho executou a mutação.
type Mode int

const (
	// ModeRemote a mutação foi aceita pelo backend.
	ModeRemote Mode = iota
	// ModeDegraded a mutação foi aplicada apenas no cache local.
	ModeDegraded
)

// Result resultado de uma mutação coordenada.
type Result struct {
	Mode Mode
}

// Degraded devolve true quando a escrita ficou apenas local.
func (r Result) Degraded() bool {
	return r.Mode == ModeDegraded
}

// Coordinator orquestra mutações remote-first com fallback local.
type Coordinator struct {
	api   *gateway.Client
	cache *localcache.Store
	log   *logger.Logger
}

// NewCoordinator constrói o coordenador.
func NewCoordinator(api *gateway.Client, cache *localcache.Store, log *logger.Logger) *Coordinator {
	return &Coordinator{api: api, cache: cache, log: log}
}

// Cache devolve o cache local compartilhado.
func (c *Coordinator) Cache() *localcache.Store {
	return c.cache
}

// API devolve o cliente do gateway remoto.
func (c *Coordinator) API() *gateway.Client {
	return c.api
}

// MutateThenSync executa a mutação remota; em caso de sucesso dispara o
// re-pull do cache (best effort: falha só é logada, a escrita já venceu) e em
// caso de falha remota executa o fallback local. Garante que exatamente um
// dos caminhos {remoto, local} muta o estado.
func (c *Coordinator) MutateThenSync(
	ctx context.Context,
	remote func(ctx context.Context) error,
	sync func(ctx context.Context) error,
	local func() error,
) (Result, error) {
	err := remote(ctx)
	if err == nil {
		if sync != nil {
			if syncErr := sync(ctx); syncErr != nil {
				c.log.Warn().Err(syncErr).Msg("sincronização pós-escrita falhou; cache pode estar defasado")
			}
		}
		return Result{Mode: ModeRemote}, nil
	}

	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		return Result{}, err
	}

	metrics.RemoteFailures.Inc()
	c.log.Warn().Err(err).Msg("API indisponível; aplicando mutação no cache local")

	if localErr := local(); localErr != nil {
		return Result{}, localErr
	}
	metrics.DegradedWrites.Inc()
	return Result{Mode: ModeDegraded}, nil
}
