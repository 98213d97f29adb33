package router

import (
	"time"

	"precificacao/internal/config"
	"precificacao/internal/handler"
	"precificacao/internal/middleware"
	"precificacao/internal/repository"
	"precificacao/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	compositionRepo := repository.NewCompositionRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	clientRepo := repository.NewClientRepository(db)
	quoteLinkRepo := repository.NewQuoteLinkRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	costingSvc := service.NewCostingService(productRepo, compositionRepo, catalogRepo)
	taxSvc := service.NewTaxService(productRepo, clientRepo)
	pricingSvc := service.NewPricingService(costingSvc, taxSvc, productRepo)
	compositionSvc := service.NewCompositionService(productRepo, compositionRepo, catalogRepo, clientRepo, quoteLinkRepo)
	catalogSvc := service.NewCatalogService(catalogRepo, clientRepo)
	productSvc := service.NewProductService(productRepo, clientRepo)
	importSvc := service.NewImportService(catalogRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc, costingSvc)
	compositionH := handler.NewCompositionHandler(compositionSvc)
	pricingH := handler.NewPricingHandler(pricingSvc, taxSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	clientsH := handler.NewClientsHandler(catalogSvc)
	importsH := handler.NewImportsHandler(importSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db))

	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productsH.List)
			products.POST("", productsH.Create)
			products.PUT("", productsH.SaveGrid)
			products.GET("/:id", productsH.GetByID)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)

			products.GET("/:id/cost", productsH.GetCost)

			products.GET("/:id/composition", compositionH.Get)
			products.PUT("/:id/composition", compositionH.Replace)
			products.DELETE("/:id/composition", compositionH.Clear)

			products.GET("/:id/quote-links", compositionH.ListQuoteLinks)
			products.POST("/:id/quote-links", compositionH.LinkQuote)
			products.DELETE("/:id/quote-links/:clientId", compositionH.UnlinkQuote)
		}

		pricing := v1.Group("/pricing")
		{
			pricing.POST("/suggest", pricingH.Suggest)
			pricing.GET("/tax-rates", pricingH.TaxRates)
		}

		catalog := v1.Group("/catalog")
		{
			catalog.GET("/materials", catalogH.ListMaterials)
			catalog.PUT("/materials", catalogH.ReplaceMaterials)
			catalog.GET("/processes", catalogH.ListProcesses)
			catalog.PUT("/processes", catalogH.ReplaceProcesses)
			catalog.GET("/third-party", catalogH.ListThirdParty)
			catalog.PUT("/third-party", catalogH.ReplaceThirdParty)
			catalog.GET("/admin-costs", catalogH.ListAdminCosts)
			catalog.PUT("/admin-costs", catalogH.ReplaceAdminCosts)
		}

		v1.GET("/clients", clientsH.List)
		v1.PUT("/clients", clientsH.Replace)
		v1.GET("/clients/:id/products", productsH.ListByClient)

		v1.GET("/ncm-taxes", clientsH.ListNcmTaxes)
		v1.PUT("/ncm-taxes", clientsH.ReplaceNcmTaxes)

		v1.POST("/import/processes", importsH.ImportProcesses)
		v1.POST("/import/materials", importsH.ImportMaterials)
	}

	return r
}
