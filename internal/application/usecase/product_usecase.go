package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/lubcarv/gestor-estoque/internal/application/offline"
	"github.com/lubcarv/gestor-estoque/internal/domain"
	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
	"github.com/lubcarv/gestor-estoque/internal/domain/validation"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/gateway"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/localcache"
)

// ProductUseCase CRUD de produtos.
type ProductUseCase struct {
	coord *offline.Coordinator
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(coord *offline.Coordinator) *ProductUseCase {
	return &ProductUseCase{coord: coord}
}

func (uc *ProductUseCase) snapshot() ([]entity.Product, error) {
	items, err := uc.coord.Cache().GetAll(localcache.EntityProducts)
	if err != nil {
		return nil, err
	}
	var out []entity.Product
	if err := localcache.DecodeAll(items, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// duplicates checa código e o par (nome, categoria) contra o snapshot local.
func (uc *ProductUseCase) duplicates(in entity.Product, excludeID int64) error {
	snapshot, err := uc.snapshot()
	if err != nil {
		return err
	}
	if validation.ProductCodeTaken(snapshot, in.Code, excludeID) {
		return fmt.Errorf("%w: já existe um produto com este código", domain.ErrDuplicate)
	}
	if validation.ProductNameInCategoryTaken(snapshot, in.Name, in.CategoryID, excludeID) {
		return fmt.Errorf("%w: já existe um produto com este nome nesta categoria", domain.ErrDuplicate)
	}
	return nil
}

// List devolve os produtos (re-pull remoto; cache como fallback).
func (uc *ProductUseCase) List(ctx context.Context) ([]entity.Product, bool, error) {
	fromCache := false
	if err := uc.coord.PullProducts(ctx); err != nil {
		if !errors.Is(err, domain.ErrRemoteUnavailable) {
			return nil, false, err
		}
		fromCache = true
	}
	out, err := uc.snapshot()
	return out, fromCache, err
}

// Get devolve um produto pelo id.
func (uc *ProductUseCase) Get(ctx context.Context, id int64) (*entity.Product, error) {
	rec, err := uc.coord.Cache().FindByID(localcache.EntityProducts, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	var out entity.Product
	if err := localcache.Decode(rec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create valida, checa duplicidades e cria o produto com saldo zero.
func (uc *ProductUseCase) Create(ctx context.Context, in entity.Product) (*entity.Product, offline.Result, error) {
	if errs := validation.Product(in); len(errs) > 0 {
		return nil, offline.Result{}, &domain.ValidationError{Messages: errs}
	}
	if err := uc.duplicates(in, 0); err != nil {
		return nil, offline.Result{}, err
	}

	in.CurrentStock = 0
	saved := in
	result, err := uc.coord.MutateThenSync(ctx,
		func(ctx context.Context) error {
			created, err := uc.coord.API().CreateProduct(ctx, in)
			if err != nil {
				return err
			}
			saved = uc.mapRemote(*created)
			return nil
		},
		uc.coord.PullProducts,
		func() error {
			rec, err := localcache.Encode(in)
			if err != nil {
				return err
			}
			delete(rec, "id")
			stored, err := uc.coord.Cache().Save(localcache.EntityProducts, rec)
			if err != nil {
				return err
			}
			return localcache.Decode(stored, &saved)
		},
	)
	if err != nil {
		return nil, offline.Result{}, err
	}
	return &saved, result, nil
}

// Update valida, checa duplicidades (ignorando o próprio id) e atualiza.
// O saldo nunca é alterado por aqui: estoqueAtual só muda pelo ledger.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in entity.Product) (*entity.Product, offline.Result, error) {
	if errs := validation.Product(in); len(errs) > 0 {
		return nil, offline.Result{}, &domain.ValidationError{Messages: errs}
	}
	if err := uc.duplicates(in, id); err != nil {
		return nil, offline.Result{}, err
	}

	in.ID = id
	saved := in
	result, err := uc.coord.MutateThenSync(ctx,
		func(ctx context.Context) error {
			updated, err := uc.coord.API().UpdateProduct(ctx, id, in)
			if err != nil {
				return err
			}
			saved = uc.mapRemote(*updated)
			return nil
		},
		uc.coord.PullProducts,
		func() error {
			rec, err := localcache.Encode(in)
			if err != nil {
				return err
			}
			// merge raso preserva o saldo mantido pelo ledger
			delete(rec, "estoqueAtual")
			delete(rec, "dataCriacao")
			stored, err := uc.coord.Cache().Save(localcache.EntityProducts, rec)
			if err != nil {
				return err
			}
			return localcache.Decode(stored, &saved)
		},
	)
	if err != nil {
		return nil, offline.Result{}, err
	}
	return &saved, result, nil
}

// Delete exclui o produto.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (offline.Result, error) {
	return uc.coord.MutateThenSync(ctx,
		func(ctx context.Context) error {
			return uc.coord.API().DeleteProduct(ctx, id)
		},
		uc.coord.PullProducts,
		func() error {
			return uc.coord.Cache().Delete(localcache.EntityProducts, id)
		},
	)
}

// Filter filtra produtos no backend; com a API fora do ar aplica os filtros
// suportados (nome, situação) sobre o cache.
func (uc *ProductUseCase) Filter(ctx context.Context, params map[string]string) ([]entity.Product, error) {
	remote, err := uc.coord.API().FilterProducts(ctx, params)
	if err == nil {
		out := make([]entity.Product, 0, len(remote))
		for _, rp := range remote {
			out = append(out, uc.mapRemote(rp))
		}
		return out, nil
	}
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		return nil, err
	}

	snapshot, snapErr := uc.snapshot()
	if snapErr != nil {
		return nil, snapErr
	}
	var out []entity.Product
	for _, p := range snapshot {
		if name := params["nome"]; name != "" && !containsFold(p.Name, name) {
			continue
		}
		if status := params["situacao"]; status != "" && p.StockStatus() != status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// LowStock devolve os produtos com situação BAIXO ou SEM_ESTOQUE.
func (uc *ProductUseCase) LowStock(ctx context.Context) ([]entity.Product, error) {
	remote, err := uc.coord.API().LowStockProducts(ctx)
	if err == nil {
		out := make([]entity.Product, 0, len(remote))
		for _, rp := range remote {
			out = append(out, uc.mapRemote(rp))
		}
		return out, nil
	}
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		return nil, err
	}

	snapshot, snapErr := uc.snapshot()
	if snapErr != nil {
		return nil, snapErr
	}
	var out []entity.Product
	for _, p := range snapshot {
		if s := p.StockStatus(); s == entity.StockStatusLow || s == entity.StockStatusEmpty {
			out = append(out, p)
		}
	}
	return out, nil
}

func (uc *ProductUseCase) mapRemote(rp gateway.RemoteProduct) entity.Product {
	var categories []entity.Category
	if items, err := uc.coord.Cache().GetAll(localcache.EntityCategories); err == nil {
		_ = localcache.DecodeAll(items, &categories)
	}
	var suppliers []entity.Supplier
	if items, err := uc.coord.Cache().GetAll(localcache.EntitySuppliers); err == nil {
		_ = localcache.DecodeAll(items, &suppliers)
	}
	existing, _ := uc.snapshot()
	return offline.MapRemoteProduct(rp, categories, suppliers, existing)
}
