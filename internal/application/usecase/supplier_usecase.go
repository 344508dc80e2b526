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

// SupplierUseCase CRUD de fornecedores.
type SupplierUseCase struct {
	coord *offline.Coordinator
}

// NewSupplierUseCase constrói o caso de uso.
func NewSupplierUseCase(coord *offline.Coordinator) *SupplierUseCase {
	return &SupplierUseCase{coord: coord}
}

func (uc *SupplierUseCase) snapshot() ([]entity.Supplier, error) {
	items, err := uc.coord.Cache().GetAll(localcache.EntitySuppliers)
	if err != nil {
		return nil, err
	}
	var out []entity.Supplier
	if err := localcache.DecodeAll(items, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// duplicates devolve o erro de duplicidade de email/CNPJ, ou nil.
func (uc *SupplierUseCase) duplicates(in entity.Supplier, excludeID int64) error {
	snapshot, err := uc.snapshot()
	if err != nil {
		return err
	}
	if validation.SupplierEmailTaken(snapshot, in.Email, excludeID) {
		return fmt.Errorf("%w: já existe um fornecedor com este email", domain.ErrDuplicate)
	}
	if validation.SupplierCNPJTaken(snapshot, in.CNPJ, excludeID) {
		return fmt.Errorf("%w: já existe um fornecedor com este CNPJ", domain.ErrDuplicate)
	}
	return nil
}

// List devolve os fornecedores (re-pull remoto; cache como fallback).
func (uc *SupplierUseCase) List(ctx context.Context) ([]entity.Supplier, bool, error) {
	fromCache := false
	if err := uc.coord.PullSuppliers(ctx); err != nil {
		if !errors.Is(err, domain.ErrRemoteUnavailable) {
			return nil, false, err
		}
		fromCache = true
	}
	out, err := uc.snapshot()
	return out, fromCache, err
}

// Get devolve um fornecedor pelo id.
func (uc *SupplierUseCase) Get(ctx context.Context, id int64) (*entity.Supplier, error) {
	rec, err := uc.coord.Cache().FindByID(localcache.EntitySuppliers, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	var out entity.Supplier
	if err := localcache.Decode(rec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create valida, checa duplicidade de email/CNPJ e cria o fornecedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in entity.Supplier) (*entity.Supplier, offline.Result, error) {
	if errs := validation.Supplier(in); len(errs) > 0 {
		return nil, offline.Result{}, &domain.ValidationError{Messages: errs}
	}
	if err := uc.duplicates(in, 0); err != nil {
		return nil, offline.Result{}, err
	}

	saved := in
	result, err := uc.coord.MutateThenSync(ctx,
		func(ctx context.Context) error {
			created, err := uc.coord.API().CreateSupplier(ctx, in)
			if err != nil {
				return err
			}
			saved = *created
			return nil
		},
		uc.coord.PullSuppliers,
		func() error {
			rec, err := localcache.Encode(in)
			if err != nil {
				return err
			}
			delete(rec, "id")
			stored, err := uc.coord.Cache().Save(localcache.EntitySuppliers, rec)
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
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in entity.Supplier) (*entity.Supplier, offline.Result, error) {
	if errs := validation.Supplier(in); len(errs) > 0 {
		return nil, offline.Result{}, &domain.ValidationError{Messages: errs}
	}
	if err := uc.duplicates(in, id); err != nil {
		return nil, offline.Result{}, err
	}

	in.ID = id
	saved := in
	result, err := uc.coord.MutateThenSync(ctx,
		func(ctx context.Context) error {
			updated, err := uc.coord.API().UpdateSupplier(ctx, id, in)
			if err != nil {
				return err
			}
			saved = *updated
			return nil
		},
		uc.coord.PullSuppliers,
		func() error {
			rec, err := localcache.Encode(in)
			if err != nil {
				return err
			}
			stored, err := uc.coord.Cache().Save(localcache.EntitySuppliers, rec)
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

// Delete exclui o fornecedor. Rejeitada enquanto houver produto
// referenciando-o, com a contagem no erro.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) (offline.Result, error) {
	count, err := uc.coord.Cache().CountRelated(localcache.EntityProducts, "fornecedorId", id)
	if err != nil {
		return offline.Result{}, err
	}
	if count > 0 {
		return offline.Result{}, &domain.InUseError{Entity: "Fornecedor", Count: count}
	}

	return uc.coord.MutateThenSync(ctx,
		func(ctx context.Context) error {
			return uc.coord.API().DeleteSupplier(ctx, id)
		},
		uc.coord.PullSuppliers,
		func() error {
			return uc.coord.Cache().Delete(localcache.EntitySuppliers, id)
		},
	)
}

// SearchByName busca por nome: remota quando disponível, senão substring local.
func (uc *SupplierUseCase) SearchByName(ctx context.Context, name string) ([]entity.Supplier, error) {
	out, err := uc.coord.API().SearchSuppliersByName(ctx, name)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		return nil, err
	}
	items, err := uc.coord.Cache().FindByField(localcache.EntitySuppliers, "nome", name)
	if err != nil {
		return nil, err
	}
	var local []entity.Supplier
	if err := localcache.DecodeAll(items, &local); err != nil {
		return nil, err
	}
	return local, nil
}
