package offline

import (
	"context"

	"github.com/lubcarv/gestor-estoque/internal/domain/entity"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/gateway"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/localcache"
)

// PullCategories sobrescreve a coleção local de categorias com o estado remoto.
func (c *Coordinator) PullCategories(ctx context.Context) error {
	categories, err := c.api.ListCategories(ctx)
	if err != nil {
		return err
	}
	items, err := localcache.EncodeAll(categories)
	if err != nil {
		return err
	}
	return c.cache.ReplaceAll(localcache.EntityCategories, items)
}

// PullSuppliers sobrescreve a coleção local de fornecedores com o estado remoto.
func (c *Coordinator) PullSuppliers(ctx context.Context) error {
	suppliers, err := c.api.ListSuppliers(ctx)
	if err != nil {
		return err
	}
	items, err := localcache.EncodeAll(suppliers)
	if err != nil {
		return err
	}
	return c.cache.ReplaceAll(localcache.EntitySuppliers, items)
}

// PullProducts sobrescreve a coleção local de produtos com o estado remoto,
// mapeando os campos do backend: saldo vem de quantidadeEstoque e referências
// que chegam só por nome são resolvidas contra categorias/fornecedores locais.
// Ids e referências ausentes são preservados do registro local existente.
func (c *Coordinator) PullProducts(ctx context.Context) error {
	remote, err := c.api.ListProducts(ctx)
	if err != nil {
		return err
	}

	var categories []entity.Category
	if items, err := c.cache.GetAll(localcache.EntityCategories); err == nil {
		_ = localcache.DecodeAll(items, &categories)
	}
	var suppliers []entity.Supplier
	if items, err := c.cache.GetAll(localcache.EntitySuppliers); err == nil {
		_ = localcache.DecodeAll(items, &suppliers)
	}
	var existing []entity.Product
	if items, err := c.cache.GetAll(localcache.EntityProducts); err == nil {
		_ = localcache.DecodeAll(items, &existing)
	}

	mapped := make([]entity.Product, 0, len(remote))
	for _, rp := range remote {
		mapped = append(mapped, MapRemoteProduct(rp, categories, suppliers, existing))
	}

	items, err := localcache.EncodeAll(mapped)
	if err != nil {
		return err
	}
	return c.cache.ReplaceAll(localcache.EntityProducts, items)
}

// PullAll re-puxa as três coleções; a primeira falha interrompe.
func (c *Coordinator) PullAll(ctx context.Context) error {
	if err := c.PullCategories(ctx); err != nil {
		return err
	}
	if err := c.PullSuppliers(ctx); err != nil {
		return err
	}
	return c.PullProducts(ctx)
}

// MapRemoteProduct converte o produto remoto para a forma local.
func MapRemoteProduct(
	rp gateway.RemoteProduct,
	categories []entity.Category,
	suppliers []entity.Supplier,
	existing []entity.Product,
) entity.Product {
	var prev *entity.Product
	for i := range existing {
		if existing[i].ID == rp.ID {
			prev = &existing[i]
			break
		}
	}

	categoryID := rp.CategoryID
	if categoryID == 0 && prev != nil {
		categoryID = prev.CategoryID
	}
	if categoryID == 0 && rp.CategoryName != "" {
		for _, cat := range categories {
			if cat.Name == rp.CategoryName {
				categoryID = cat.ID
				break
			}
		}
	}

	supplierID := rp.SupplierID
	if supplierID == 0 && prev != nil {
		supplierID = prev.SupplierID
	}
	if supplierID == 0 && rp.SupplierName != "" {
		for _, sup := range suppliers {
			if sup.Name == rp.SupplierName {
				supplierID = sup.ID
				break
			}
		}
	}

	stock := 0
	if rp.StockQuantity != nil {
		stock = *rp.StockQuantity
	} else if prev != nil {
		stock = prev.CurrentStock
	}

	return entity.Product{
		ID:            rp.ID,
		Code:          rp.Code,
		Name:          rp.Name,
		Description:   rp.Description,
		Price:         rp.Price,
		UnitMeasure:   rp.UnitMeasure,
		Dimensions:    rp.Dimensions,
		Color:         rp.Color,
		MinQuantity:   rp.MinQuantity,
		IdealQuantity: rp.IdealQuantity,
		MaxQuantity:   rp.MaxQuantity,
		Active:        rp.Active,
		CategoryID:    categoryID,
		SupplierID:    supplierID,
		CurrentStock:  stock,
	}
}
