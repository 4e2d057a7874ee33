package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-ropa/internal/application/auth"
	"github.com/tu-usuario/tienda-ropa/internal/application/ledger"
	"github.com/tu-usuario/tienda-ropa/internal/application/usecase"
	"github.com/tu-usuario/tienda-ropa/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	SizeUC      *usecase.SizeUseCase
	ImageUC     *usecase.ImageUseCase
	CategoryUC  *usecase.CategoryUseCase
	CustomerUC  *usecase.CustomerUseCase
	SupplierUC  *usecase.SupplierUseCase
	UserUC      *usecase.UserUseCase
	RoleUC      *usecase.RoleUseCase
	DashboardUC *usecase.DashboardUseCase
	Ledger      *ledger.StockLedger
	PurchaseQ   *usecase.PurchaseQueryUseCase
	SaleQ       *usecase.SaleQueryUseCase
	ReturnQ     *usecase.ReturnQueryUseCase
	Permissions permissionChecker
	JWTSecret   string
}

// Router registra las rutas de la API. Todo lo que no es auth requiere
// Bearer Token; cada grupo exige además el permiso de su módulo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	requires := func(module string) fiber.Handler {
		return RequirePermission(module, deps.Permissions)
	}

	// Products + sizes (protegido, módulo productos)
	products := protected.Group("/products", requires(entity.ModuleProducts))
	productHandler := NewProductHandler(deps.ProductUC)
	sizeHandler := NewSizeHandler(deps.SizeUC)
	imageHandler := NewImageHandler(deps.ImageUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/sizes", sizeHandler.ListByProduct)
	products.Get("/:id/images", imageHandler.ListByProduct)

	sizes := protected.Group("/sizes", requires(entity.ModuleProducts))
	sizes.Post("/", sizeHandler.Create)
	sizes.Put("/:id", sizeHandler.Update)
	sizes.Delete("/:id", sizeHandler.Delete)

	images := protected.Group("/images", requires(entity.ModuleProducts))
	images.Post("/", imageHandler.Create)
	images.Post("/batch", imageHandler.CreateBatch)
	images.Get("/:id", imageHandler.GetByID)
	images.Put("/:id", imageHandler.Update)
	images.Delete("/:id", imageHandler.Delete)

	categories := protected.Group("/categories", requires(entity.ModuleProducts))
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Customers (protegido, módulo clientes)
	customers := protected.Group("/customers", requires(entity.ModuleCustomers))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	// Suppliers (protegido, módulo proveedores)
	suppliers := protected.Group("/suppliers", requires(entity.ModuleSuppliers))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)

	// Purchases (protegido, módulo compras)
	purchases := protected.Group("/purchases", requires(entity.ModulePurchases))
	purchaseHandler := NewPurchaseHandler(deps.Ledger, deps.PurchaseQ)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/stats", purchaseHandler.Stats)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Post("/:id/void", purchaseHandler.Void)

	// Sales (protegido, módulo ventas)
	sales := protected.Group("/sales", requires(entity.ModuleSales))
	saleHandler := NewSaleHandler(deps.Ledger, deps.SaleQ)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/stats", saleHandler.Stats)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Post("/:id/void", saleHandler.Void)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Returns (protegido, módulo devoluciones)
	returns := protected.Group("/returns", requires(entity.ModuleReturns))
	returnHandler := NewReturnHandler(deps.Ledger, deps.ReturnQ)
	returns.Post("/", returnHandler.Create)
	returns.Get("/", returnHandler.List)
	returns.Get("/stats", returnHandler.Stats)
	returns.Get("/:id", returnHandler.GetByID)
	returns.Post("/:id/toggle", returnHandler.Toggle)
	sales.Get("/:id/returns", returnHandler.ListBySale)
	customers.Get("/:id/sales", saleHandler.ByCustomer)

	// Users (protegido, módulo usuarios)
	users := protected.Group("/users", requires(entity.ModuleUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)

	// Roles (protegido, módulo roles). Crear roles o cambiar permisos
	// queda reservado al Administrador: un rol con el módulo roles podría
	// de lo contrario ampliar sus propios permisos.
	roles := protected.Group("/roles", requires(entity.ModuleRoles))
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Post("/", RequireRole(entity.RoleAdmin), roleHandler.Create)
	roles.Put("/:id/permissions", RequireRole(entity.RoleAdmin), roleHandler.UpdatePermissions)

	// Dashboard (protegido, módulo dashboard)
	dashboard := protected.Group("/dashboard", requires(entity.ModuleDashboard))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.Summary)
	dashboard.Get("/sales-by-month", dashboardHandler.SalesByMonth)
	dashboard.Get("/returns-by-month", dashboardHandler.ReturnsByMonth)
}
