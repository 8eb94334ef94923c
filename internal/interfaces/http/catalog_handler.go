package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Precios-api/internal/application/dto"
	"github.com/jhoicas/Precios-api/internal/application/usecase"
)

// CatalogHandler maneja las peticiones HTTP del catálogo.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListCategories godoc
// @Summary      Listar categorías con su ruta completa
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando categorías"})
	}
	return c.JSON(out)
}

// ListProducts godoc
// @Summary      Listar productos del catálogo
// @Tags         catalog
// @Produce      json
// @Param        category_id  query  int  false  "Filtrar por categoría"
// @Param        limit        query  int  false  "Límite"   default(20)
// @Param        offset       query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	categoryID := int64(c.QueryInt("category_id", 0))
	out, err := h.uc.ListProducts(c.UserContext(), categoryID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando productos"})
	}
	return c.JSON(out)
}

// BuyerProductInfo godoc
// @Summary      Datos extendidos comprador-producto
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        org_id      path  int  true  "ID de la organización compradora"
// @Param        product_id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.BuyerProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orgs/{org_id}/products/{product_id} [get]
func (h *CatalogHandler) BuyerProductInfo(c *fiber.Ctx) error {
	orgID, err := paramInt64(c, "org_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ORG", Message: "org_id debe ser numérico"})
	}
	productID, err := paramInt64(c, "product_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PRODUCT", Message: "product_id debe ser numérico"})
	}
	out, err := h.uc.BuyerProductInfo(c.UserContext(), orgID, productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando datos del comprador"})
	}
	return c.JSON(out)
}
