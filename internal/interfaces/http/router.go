package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lubcarv/gestor-estoque/internal/application/analytics"
	"github.com/lubcarv/gestor-estoque/internal/application/inventory"
	"github.com/lubcarv/gestor-estoque/internal/application/report"
	"github.com/lubcarv/gestor-estoque/internal/application/usecase"
	"github.com/lubcarv/gestor-estoque/internal/infrastructure/localcache"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	ProductUC   *usecase.ProductUseCase
	Ledger      *inventory.Ledger
	DashboardUC *analytics.DashboardUseCase
	Exporter    *report.Exporter
	Cache       *localcache.Store
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categorias
	categories := api.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/descricao/:descricao", categoryHandler.SearchByDescription)
	categories.Get("/:id", categoryHandler.Get)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Fornecedores
	suppliers := api.Group("/fornecedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/nome/:nome", supplierHandler.SearchByName)
	suppliers.Get("/:id", supplierHandler.Get)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Produtos. As rotas fixas vêm antes das parametrizadas para o Fiber não
	// capturar "filtrar" como :id.
	products := api.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.Ledger)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/filtrar", productHandler.Filter)
	products.Get("/estoque-baixo", productHandler.LowStock)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/repor", inventoryHandler.Restock)
	products.Put("/:id/retirar", inventoryHandler.Withdraw)
	products.Put("/:id/ativar", inventoryHandler.Activate)
	products.Put("/:id/inativar", inventoryHandler.Deactivate)
	products.Get("/:id/historico", inventoryHandler.History)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/kpis", dashboardHandler.KPIs)
	dashboard.Get("/top-vendidos", dashboardHandler.TopSellers)
	dashboard.Get("/menos-vendidos", dashboardHandler.BottomSellers)
	dashboard.Get("/categorias-vendidas", dashboardHandler.CategoriesSold)
	dashboard.Get("/movimentacoes-periodo", dashboardHandler.MovementsInPeriod)
	dashboard.Get("/ultimas-movimentacoes", dashboardHandler.RecentMovements)

	// Relatórios
	reports := api.Group("/relatorios")
	reportHandler := NewReportHandler(deps.Exporter)
	reports.Get("/estoque.xlsx", reportHandler.Excel)
	reports.Get("/estoque.pdf", reportHandler.PDF)

	// Preferências
	prefs := api.Group("/preferencias")
	prefHandler := NewPreferencesHandler(deps.Cache)
	prefs.Get("/tema", prefHandler.GetTheme)
	prefs.Put("/tema", prefHandler.SetTheme)
}
