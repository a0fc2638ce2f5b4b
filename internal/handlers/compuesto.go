package handlers

import (
	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/services"
	"github.com/gofiber/fiber/v2"
)

// CompuestoInput is the body of create and update
type CompuestoInput struct {
	Nombre *string `json:"nombre" validate:"required"`
}

// CompuestoHandler handles /api/compuestos routes
type CompuestoHandler struct {
	Service *services.CompuestoService
	Log     *logging.Logger
}

// ListCompuestos handles GET /api/compuestos/
// @Summary List compuestos
// @Description Get every compuesto
// @Tags Compuestos
// @Produce json
// @Success 200 {array} models.Compuesto
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /compuestos/ [get]
func (h *CompuestoHandler) ListCompuestos(c *fiber.Ctx) error {
	result, err := h.Service.List(c.UserContext())
	if err != nil {
		return renderError(c, h.Log, err, "compuesto.list")
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// GetCompuesto handles GET /api/compuestos/:id
// @Summary Get a compuesto
// @Tags Compuestos
// @Produce json
// @Param id path string true "Compuesto ID"
// @Success 200 {object} models.Compuesto
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /compuestos/{id} [get]
func (h *CompuestoHandler) GetCompuesto(c *fiber.Ctx) error {
	result, err := h.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return renderError(c, h.Log, err, "compuesto.get")
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// CreateCompuesto handles POST /api/compuestos/
// @Summary Create a compuesto
// @Tags Compuestos
// @Accept json
// @Produce json
// @Param body body CompuestoInput true "Compuesto"
// @Success 201 {object} models.Compuesto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /compuestos/ [post]
func (h *CompuestoHandler) CreateCompuesto(c *fiber.Ctx) error {
	var body CompuestoInput
	if berr := parseBody(c, &body); berr != nil {
		return berr.render(c)
	}

	result, err := h.Service.Create(c.UserContext(), *body.Nombre)
	if err != nil {
		return renderError(c, h.Log, err, "compuesto.create")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// UpdateCompuesto handles PUT /api/compuestos/:id
// @Summary Update a compuesto
// @Tags Compuestos
// @Accept json
// @Produce json
// @Param id path string true "Compuesto ID"
// @Param body body CompuestoInput true "Compuesto"
// @Success 200 {object} models.Compuesto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /compuestos/{id} [put]
func (h *CompuestoHandler) UpdateCompuesto(c *fiber.Ctx) error {
	var body CompuestoInput
	if berr := parseBody(c, &body); berr != nil {
		return berr.render(c)
	}

	result, err := h.Service.Update(c.UserContext(), c.Params("id"), *body.Nombre)
	if err != nil {
		return renderError(c, h.Log, err, "compuesto.update")
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// DeleteCompuesto handles DELETE /api/compuestos/:id
// @Summary Delete a compuesto
// @Description Deletes the compuesto and every association that references it
// @Tags Compuestos
// @Produce json
// @Param id path string true "Compuesto ID"
// @Success 200 {object} services.DeleteResult
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /compuestos/{id} [delete]
func (h *CompuestoHandler) DeleteCompuesto(c *fiber.Ctx) error {
	result, err := h.Service.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return renderError(c, h.Log, err, "compuesto.delete")
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// ListMedicamentosOfCompuesto handles GET /api/compuestos/:id/medicamentos
// @Summary List the medicamentos that contain a compuesto
// @Tags Compuestos
// @Produce json
// @Param id path string true "Compuesto ID"
// @Success 200 {array} models.MedicamentoDeCompuesto
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /compuestos/{id}/medicamentos [get]
func (h *CompuestoHandler) ListMedicamentosOfCompuesto(c *fiber.Ctx) error {
	result, err := h.Service.ListMedicamentos(c.UserContext(), c.Params("id"))
	if err != nil {
		return renderError(c, h.Log, err, "compuesto.medicamentos")
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
