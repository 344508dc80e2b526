// Package usecase contém os casos de uso CRUD das entidades de cadastro
// (categorias, fornecedores, produtos): validação e checagem de duplicidade
// antes de qualquer chamada de rede, mutação remote-first com fallback local.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/lubcarv/gestor-estoque/internal/application/offline"
	"github.com/lubcarv/gestor-estoque/internal/domain"
	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
	"github.com/lubcarv/gestor-estoque/internal/domain/validation"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/localcache"
)

// CategoryUseCase CRUD de categorias.
type CategoryUseCase struct {
	coord *offline.Coordinator
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(coord *offline.Coordinator) *CategoryUseCase {
	return &CategoryUseCase{coord: coord}
}

func (uc *CategoryUseCase) snapshot() ([]entity.Category, error) {
	items, err := uc.coord.Cache().GetAll(localcache.EntityCategories)
	if err != nil {
		return nil, err
	}
	var out []entity.Category
	if err := localcache.DecodeAll(items, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List devolve as categorias: re-puxa do backend quando disponível, senão
// devolve o espelho local. O segundo retorno indica leitura do cache.
func (uc *CategoryUseCase) List(ctx context.Context) ([]entity.Category, bool, error) {
	fromCache := false
	if err := uc.coord.PullCategories(ctx); err != nil {
		if !errors.Is(err, domain.ErrRemoteUnavailable) {
			return nil, false, err
		}
		fromCache = true
	}
	out, err := uc.snapshot()
	return out, fromCache, err
}

// Get devolve uma categoria pelo id (cache local; eventual-consistente).
func (uc *CategoryUseCase) Get(ctx context.Context, id int64) (*entity.Category, error) {
	rec, err := uc.coord.Cache().FindByID(localcache.EntityCategories, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	var out entity.Category
	if err := localcache.Decode(rec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create valida, checa duplicidade de nome e cria a categoria.
func (uc *CategoryUseCase) Create(ctx context.Context, in entity.Category) (*entity.Category, offline.Result, error) {
	if errs := validation.Category(in); len(errs) > 0 {
		return nil, offline.Result{}, &domain.ValidationError{Messages: errs}
	}
	snapshot, err := uc.snapshot()
	if err != nil {
		return nil, offline.Result{}, err
	}
	if validation.CategoryNameTaken(snapshot, in.Name, 0) {
		return nil, offline.Result{}, fmt.Errorf("%w: já existe uma categoria com este nome", domain.ErrDuplicate)
	}

	saved := in
	result, err := uc.coord.MutateThenSync(ctx,
		func(ctx context.Context) error {
			created, err := uc.coord.API().CreateCategory(ctx, in)
			if err != nil {
				return err
			}
			saved = *created
			return nil
		},
		uc.coord.PullCategories,
		func() error {
			rec, err := localcache.Encode(in)
			if err != nil {
				return err
			}
			delete(rec, "id")
			stored, err := uc.coord.Cache().Save(localcache.EntityCategories, rec)
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

// Update valida, checa duplicidade (ignorando o próprio id) e atualiza.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in entity.Category) (*entity.Category, offline.Result, error) {
	if errs := validation.Category(in); len(errs) > 0 {
		return nil, offline.Result{}, &domain.ValidationError{Messages: errs}
	}
	snapshot, err := uc.snapshot()
	if err != nil {
		return nil, offline.Result{}, err
	}
	if validation.CategoryNameTaken(snapshot, in.Name, id) {
		return nil, offline.Result{}, fmt.Errorf("%w: já existe uma categoria com este nome", domain.ErrDuplicate)
	}

	in.ID = id
	saved := in
	result, err := uc.coord.MutateThenSync(ctx,
		func(ctx context.Context) error {
			updated, err := uc.coord.API().UpdateCategory(ctx, id, in)
			if err != nil {
				return err
			}
			saved = *updated
			return nil
		},
		uc.coord.PullCategories,
		func() error {
			rec, err := localcache.Encode(in)
			if err != nil {
				return err
			}
			stored, err := uc.coord.Cache().Save(localcache.EntityCategories, rec)
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

// Delete exclui a categoria. Rejeitada enquanto houver produto
// referenciando-a, com a contagem no erro.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) (offline.Result, error) {
	count, err := uc.coord.Cache().CountRelated(localcache.EntityProducts, "categoriaId", id)
	if err != nil {
		return offline.Result{}, err
	}
	if count > 0 {
		return offline.Result{}, &domain.InUseError{Entity: "Categoria", Count: count}
	}

	return uc.coord.MutateThenSync(ctx,
		func(ctx context.Context) error {
			return uc.coord.API().DeleteCategory(ctx, id)
		},
		uc.coord.PullCategories,
		func() error {
			return uc.coord.Cache().Delete(localcache.EntityCategories, id)
		},
	)
}

// SearchByDescription busca por descrição: remota quando disponível, senão
// substring no cache local.
func (uc *CategoryUseCase) SearchByDescription(ctx context.Context, description string) ([]entity.Category, error) {
	out, err := uc.coord.API().SearchCategoriesByDescription(ctx, description)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		return nil, err
	}
	items, err := uc.coord.Cache().FindByField(localcache.EntityCategories, "descricao", description)
	if err != nil {
		return nil, err
	}
	var local []entity.Category
	if err := localcache.DecodeAll(items, &local); err != nil {
		return nil, err
	}
	return local, nil
}
