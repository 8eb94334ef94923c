package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Precios-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PriceUC      *usecase.PriceUseCase
	CatalogUC    *usecase.CatalogUseCase
	DefaultOrgID int64
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/products", catalogHandler.ListProducts)

	// Precios por organización (público, como el endpoint histórico)
	priceHandler := NewPriceHandler(deps.PriceUC, deps.DefaultOrgID)
	orgs := api.Group("/orgs")
	orgs.Get("/:org_id/prices", priceHandler.ListRules)
	orgs.Post("/:org_id/prices", priceHandler.Lookup)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/prices/lookup", priceHandler.LookupDefault)
	protected.Get("/orgs/:org_id/products/:product_id", catalogHandler.BuyerProductInfo)
}
