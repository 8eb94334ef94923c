package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Precios-api/internal/application/dto"
	"github.com/jhoicas/Precios-api/internal/application/usecase"
	"github.com/jhoicas/Precios-api/internal/domain"
)

// PriceHandler maneja las peticiones HTTP de precios por organización.
type PriceHandler struct {
	uc *usecase.PriceUseCase
	// defaultOrgID organización de respaldo para el lookup sin org explícita
	// (configuración, nunca estado global del motor).
	defaultOrgID int64
}

// NewPriceHandler construye el handler.
func NewPriceHandler(uc *usecase.PriceUseCase, defaultOrgID int64) *PriceHandler {
	return &PriceHandler{uc: uc, defaultOrgID: defaultOrgID}
}

// ListRules godoc
// @Summary      Listar reglas de precio de una organización
// @Tags         prices
// @Produce      json
// @Param        org_id  path  int  true  "ID de la organización compradora"
// @Success      200  {object}  dto.PriceRuleListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orgs/{org_id}/prices [get]
func (h *PriceHandler) ListRules(c *fiber.Ctx) error {
	orgID, err := paramInt64(c, "org_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ORG", Message: "org_id debe ser numérico"})
	}
	out, err := h.uc.ListRules(c.UserContext(), orgID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando precios"})
	}
	return c.JSON(out)
}

// Lookup godoc
// @Summary      Resolver precios de un lote de productos para una organización
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        org_id  path  int                     true  "ID de la organización compradora"
// @Param        body    body  dto.PriceLookupRequest  true  "IDs de productos"
// @Success      200  {array}   dto.ResolvedPriceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orgs/{org_id}/prices [post]
func (h *PriceHandler) Lookup(c *fiber.Ctx) error {
	orgID, err := paramInt64(c, "org_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ORG", Message: "org_id debe ser numérico"})
	}
	return h.lookup(c, orgID)
}

// LookupDefault godoc
// @Summary      Resolver precios con la organización del token (o la por defecto)
// @Tags         prices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PriceLookupRequest  true  "IDs de productos"
// @Success      200  {array}   dto.ResolvedPriceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/prices/lookup [post]
func (h *PriceHandler) LookupDefault(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == 0 {
		orgID = h.defaultOrgID
	}
	if orgID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ORG_REQUIRED", Message: domain.ErrOrgRequired.Error()})
	}
	return h.lookup(c, orgID)
}

// lookup parsea el cuerpo y delega en el caso de uso. Cuerpo ausente o sin
// product_ids responde 200 con lista vacía (contrato histórico), no error.
func (h *PriceHandler) lookup(c *fiber.Ctx, orgID int64) error {
	if len(c.Body()) == 0 {
		return c.JSON([]dto.ResolvedPriceResponse{})
	}
	var in dto.PriceLookupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Lookup(c.UserContext(), orgID, in.ProductIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando precios"})
	}
	return c.JSON(out)
}

// paramInt64 parsea un parámetro de ruta numérico.
func paramInt64(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}
