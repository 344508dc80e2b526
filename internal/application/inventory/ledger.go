// Package inventory implementa o ledger de estoque: aplica deltas de
// quantidade ao saldo do produto e anexa ao histórico imutável uma
// movimentação com o antes/depois. A escrita tenta o backend primeiro; com a
// API fora do ar o saldo é mutado direto no cache local (modo degradado).
package inventory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lubcarv/gestor-estoque/internal/application/offline"
	"github.com/lubcarv/gestor-estoque/internal/domain"
	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
	"github.com/lubcarv/gestor-estoque/internal/domain/validation"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/localcache"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/metrics"
	"github.com/lubcarv/gestor-estoque/pkg/logger"
)

// Ledger caso de uso das movimentações de estoque.
//
// As mutações serializam atrás de um mutex: a submissão duplicada que o front
// original não prevenia (botão habilitado durante a requisição) aqui espera a
// anterior terminar. Duas instâncias do processo ainda podem se perder
// mutuamente (limitação conhecida, sem coordenação entre processos).
type Ledger struct {
	mu    sync.Mutex
	coord *offline.Coordinator
	log   *logger.Logger
}

// NewLedger constrói o ledger.
func NewLedger(coord *offline.Coordinator, log *logger.Logger) *Ledger {
	return &Ledger{coord: coord, log: log}
}

// MovementInput entrada para registrar uma movimentação.
type MovementInput struct {
	ProductID int64
	Quantity  int
	User      string
	Note      string
}

// MovementResult movimentação aceita, com o sinal de modo degradado.
type MovementResult struct {
	Movement entity.StockMovement
	Degraded bool
}

// RegisterEntry registra uma entrada: saldo += quantidade.
func (l *Ledger) RegisterEntry(ctx context.Context, in MovementInput) (*MovementResult, error) {
	return l.register(ctx, entity.MovementTypeIn, in)
}

// RegisterWithdrawal registra uma saída: saldo -= quantidade. A checagem de
// saldo acontece antes de qualquer mutação ou chamada remota; saldo
// insuficiente rejeita sem nenhum efeito colateral.
func (l *Ledger) RegisterWithdrawal(ctx context.Context, in MovementInput) (*MovementResult, error) {
	return l.register(ctx, entity.MovementTypeOut, in)
}

func (l *Ledger) register(ctx context.Context, movType string, in MovementInput) (*MovementResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if in.Note == "" {
		if movType == entity.MovementTypeIn {
			in.Note = "Entrada de estoque"
		} else {
			in.Note = "Saída de estoque"
		}
	}

	candidate := entity.StockMovement{
		ProductID: in.ProductID,
		Type:      movType,
		Quantity:  in.Quantity,
		User:      in.User,
		Note:      in.Note,
	}
	if errs := validation.Movement(candidate); len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}

	cache := l.coord.Cache()
	rec, err := cache.FindByID(localcache.EntityProducts, in.ProductID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	var product entity.Product
	if err := localcache.Decode(rec, &product); err != nil {
		return nil, err
	}

	// O saldo anterior é capturado aqui, antes da chamada remota. O front
	// original reconstruía o valor somando a quantidade de volta ao saldo
	// pós-sincronização, o que corrompia o registro se outra mutação tivesse
	// ocorrido no intervalo.
	before := product.CurrentStock
	if movType == entity.MovementTypeOut && before < in.Quantity {
		return nil, &domain.InsufficientStockError{Available: before, Requested: in.Quantity}
	}

	after := before + in.Quantity
	if movType == entity.MovementTypeOut {
		after = before - in.Quantity
	}

	result, err := l.coord.MutateThenSync(ctx,
		func(ctx context.Context) error {
			if movType == entity.MovementTypeIn {
				return l.coord.API().RestockProduct(ctx, in.ProductID, in.Quantity, in.User)
			}
			return l.coord.API().WithdrawProduct(ctx, in.ProductID, in.Quantity, in.User)
		},
		l.coord.PullProducts,
		func() error {
			_, err := cache.Save(localcache.EntityProducts, localcache.Record{
				"id":           in.ProductID,
				"estoqueAtual": after,
			})
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	// O backend não devolve o histórico de forma confiável, então a
	// movimentação é sempre registrada localmente, inclusive no caminho remoto.
	candidate.TransactionID = uuid.New().String()
	candidate.QuantityBefore = before
	candidate.QuantityAfter = after

	movRec, err := localcache.Encode(candidate)
	if err != nil {
		return nil, err
	}
	saved, err := cache.AppendMovement(movRec)
	if err != nil {
		return nil, err
	}
	if err := localcache.Decode(saved, &candidate); err != nil {
		return nil, err
	}

	metrics.Movements.WithLabelValues(movType).Inc()
	l.log.Info().
		Int64("produto", in.ProductID).
		Str("tipo", movType).
		Int("quantidade", in.Quantity).
		Int("saldoAnterior", before).
		Int("saldoAtual", after).
		Bool("degradado", result.Degraded()).
		Msg("movimentação registrada")

	return &MovementResult{Movement: candidate, Degraded: result.Degraded()}, nil
}

// History devolve o histórico do produto: remoto quando disponível, senão as
// movimentações do cache local (mais recentes primeiro).
func (l *Ledger) History(ctx context.Context, productID int64) ([]entity.StockMovement, error) {
	movements, err := l.coord.API().ProductHistory(ctx, productID)
	if err == nil {
		return movements, nil
	}

	items, err := l.coord.Cache().MovementsByProduct(productID)
	if err != nil {
		return nil, err
	}
	var out []entity.StockMovement
	if err := localcache.DecodeAll(items, &out); err != nil {
		return nil, err
	}
	return out, nil
}
