package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/tienda-ropa/internal/application/auth"
	"github.com/tu-usuario/tienda-ropa/internal/application/ledger"
	"github.com/tu-usuario/tienda-ropa/internal/application/usecase"
	infrapdf "github.com/tu-usuario/tienda-ropa/internal/infrastructure/pdf"
	"github.com/tu-usuario/tienda-ropa/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/tienda-ropa/internal/interfaces/http"
	"github.com/tu-usuario/tienda-ropa/pkg/config"
	"github.com/tu-usuario/tienda-ropa/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	sizeRepo := postgres.NewSizeRepository(pool)
	imageRepo := postgres.NewImageRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	returnRepo := postgres.NewReturnRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Motor de inventario: compras, ventas y devoluciones transaccionales.
	stockLedger := ledger.NewStockLedger(
		txRunner,
		productRepo, sizeRepo, supplierRepo, customerRepo,
		saleRepo, purchaseRepo, returnRepo,
	)

	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	productUC := usecase.NewProductUseCase(productRepo, sizeRepo, categoryRepo)
	sizeUC := usecase.NewSizeUseCase(sizeRepo, productRepo)
	imageUC := usecase.NewImageUseCase(imageRepo, productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo)
	purchaseQ := usecase.NewPurchaseQueryUseCase(purchaseRepo)
	saleQ := usecase.NewSaleQueryUseCase(saleRepo, customerRepo, productRepo, sizeRepo, receiptGen)
	returnQ := usecase.NewReturnQueryUseCase(returnRepo)

	authUC := auth.NewAuthUseCase(userRepo, roleRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda Ropa API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		SizeUC:      sizeUC,
		ImageUC:     imageUC,
		CategoryUC:  categoryUC,
		CustomerUC:  customerUC,
		SupplierUC:  supplierUC,
		UserUC:      userUC,
		RoleUC:      roleUC,
		DashboardUC: dashboardUC,
		Ledger:      stockLedger,
		PurchaseQ:   purchaseQ,
		SaleQ:       saleQ,
		ReturnQ:     returnQ,
		Permissions: httpRouter.NewRolePermissionChecker(roleRepo),
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
