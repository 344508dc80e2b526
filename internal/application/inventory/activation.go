package inventory

import (
	"context"
	"strings"

	"github.com/lubcarv/gestor-estoque/internal/application/offline"
	"github.com/lubcarv/gestor-estoque/internal/domain"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/localcache"
)

// SetProductActive ativa ou inativa um produto (PUT ativar/inativar no
// backend; fallback local vira o campo ativo no cache).
func (l *Ledger) SetProductActive(ctx context.Context, productID int64, active bool, user string) (offline.Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if strings.TrimSpace(user) == "" {
		return offline.Result{}, &domain.ValidationError{Messages: []string{"Usuário responsável é obrigatório"}}
	}

	cache := l.coord.Cache()
	rec, err := cache.FindByID(localcache.EntityProducts, productID)
	if err != nil {
		return offline.Result{}, err
	}
	if rec == nil {
		return offline.Result{}, domain.ErrNotFound
	}

	return l.coord.MutateThenSync(ctx,
		func(ctx context.Context) error {
			if active {
				return l.coord.API().ActivateProduct(ctx, productID, user)
			}
			return l.coord.API().DeactivateProduct(ctx, productID, user)
		},
		l.coord.PullProducts,
		func() error {
			_, err := cache.Save(localcache.EntityProducts, localcache.Record{
				"id":    productID,
				"ativo": active,
			})
			return err
		},
	)
}
