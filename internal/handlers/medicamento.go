package handlers

import (
	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/services"
	"github.com/Rosvend/REST-Api-NoSQL/internal/types"
	"github.com/Rosvend/REST-Api-NoSQL/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// MedicamentoInput is the body of create and update
type MedicamentoInput struct {
	Nombre     *string `json:"nombre" validate:"required"`
	Fabricante *string `json:"fabricante" validate:"required"`
}

// AddCompuestoInput is the body of POST /api/medicamentos/:id/compuestos
type AddCompuestoInput struct {
	CompuestoID   *string            `json:"compuesto_id" validate:"required"`
	Concentracion *types.FlexFloat64 `json:"concentracion" validate:"required" swaggertype:"number"`
	Unidad        *string            `json:"unidad" validate:"required"`
}

// AddCompuestoResult is the body answered by POST /api/medicamentos/:id/compuestos
type AddCompuestoResult struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	CompuestoID   string  `json:"compuesto_id,omitempty"`
	MedicamentoID string  `json:"medicamento_id,omitempty"`
	Concentracion float64 `json:"concentracion,omitempty"`
	UnidadMedida  string  `json:"unidad_medida,omitempty"`
}

// MedicamentoHandler handles /api/medicamentos routes
type MedicamentoHandler struct {
	Service *services.MedicamentoService
	Log     *logging.Logger
}

// ListMedicamentos handles GET /api/medicamentos/
// @Summary List medicamentos
// @Tags Medicamentos
// @Produce json
// @Success 200 {array} models.Medicamento
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /medicamentos/ [get]
func (h *MedicamentoHandler) ListMedicamentos(c *fiber.Ctx) error {
	result, err := h.Service.List(c.UserContext())
	if err != nil {
		return renderError(c, h.Log, err, "medicamento.list")
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// GetMedicamento handles GET /api/medicamentos/:id
// @Summary Get a medicamento
// @Tags Medicamentos
// @Produce json
// @Param id path string true "Medicamento ID"
// @Success 200 {object} models.Medicamento
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /medicamentos/{id} [get]
func (h *MedicamentoHandler) GetMedicamento(c *fiber.Ctx) error {
	result, err := h.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return renderError(c, h.Log, err, "medicamento.get")
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// CreateMedicamento handles POST /api/medicamentos/
// @Summary Create a medicamento
// @Tags Medicamentos
// @Accept json
// @Produce json
// @Param body body MedicamentoInput true "Medicamento"
// @Success 201 {object} models.Medicamento
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /medicamentos/ [post]
func (h *MedicamentoHandler) CreateMedicamento(c *fiber.Ctx) error {
	var body MedicamentoInput
	if berr := parseBody(c, &body); berr != nil {
		return berr.render(c)
	}

	result, err := h.Service.Create(c.UserContext(), *body.Nombre, *body.Fabricante)
	if err != nil {
		return renderError(c, h.Log, err, "medicamento.create")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// UpdateMedicamento handles PUT /api/medicamentos/:id
// @Summary Update a medicamento
// @Tags Medicamentos
// @Accept json
// @Produce json
// @Param id path string true "Medicamento ID"
// @Param body body MedicamentoInput true "Medicamento"
// @Success 200 {object} models.Medicamento
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /medicamentos/{id} [put]
func (h *MedicamentoHandler) UpdateMedicamento(c *fiber.Ctx) error {
	var body MedicamentoInput
	if berr := parseBody(c, &body); berr != nil {
		return berr.render(c)
	}

	result, err := h.Service.Update(c.UserContext(), c.Params("id"), *body.Nombre, *body.Fabricante)
	if err != nil {
		return renderError(c, h.Log, err, "medicamento.update")
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// DeleteMedicamento handles DELETE /api/medicamentos/:id
// @Summary Delete a medicamento
// @Description Deletes the medicamento and every association that references it
// @Tags Medicamentos
// @Produce json
// @Param id path string true "Medicamento ID"
// @Success 200 {object} services.DeleteResult
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /medicamentos/{id} [delete]
func (h *MedicamentoHandler) DeleteMedicamento(c *fiber.Ctx) error {
	result, err := h.Service.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return renderError(c, h.Log, err, "medicamento.delete")
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// ListCompuestosOfMedicamento handles GET /api/medicamentos/:id/compuestos
// @Summary List the compuestos of a medicamento
// @Tags Medicamentos
// @Produce json
// @Param id path string true "Medicamento ID"
// @Success 200 {array} models.CompuestoDeMedicamento
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /medicamentos/{id}/compuestos [get]
func (h *MedicamentoHandler) ListCompuestosOfMedicamento(c *fiber.Ctx) error {
	result, err := h.Service.ListCompuestos(c.UserContext(), c.Params("id"))
	if err != nil {
		return renderError(c, h.Log, err, "medicamento.compuestos")
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// AddCompuestoToMedicamento handles POST /api/medicamentos/:id/compuestos
// @Summary Add a compuesto to a medicamento
// @Tags Medicamentos
// @Accept json
// @Produce json
// @Param id path string true "Medicamento ID"
// @Param body body AddCompuestoInput true "Compuesto, concentration and unit"
// @Success 201 {object} AddCompuestoResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 500 {object} AddCompuestoResult
// @Router /medicamentos/{id}/compuestos [post]
func (h *MedicamentoHandler) AddCompuestoToMedicamento(c *fiber.Ctx) error {
	var body AddCompuestoInput
	if berr := parseBody(c, &body); berr != nil {
		return berr.render(c)
	}

	medicamentoID := c.Params("id")
	concentracion := body.Concentracion.Float64()

	_, err := h.Service.AddCompuesto(c.UserContext(), medicamentoID, *body.CompuestoID, concentracion, *body.Unidad)
	if err != nil {
		if isBoundaryError(err) {
			return renderError(c, h.Log, err, "medicamento.compuestos.add")
		}
		h.Log.Error("Failed to add compuesto to medicamento",
			"medicamento_id", medicamentoID, "compuesto_id", *body.CompuestoID, "error", err)
		return utils.SuccessResponse(c, AddCompuestoResult{
			Success: false,
			Message: "Failed to add compuesto to medicamento",
		}, fiber.StatusInternalServerError)
	}

	return utils.SuccessResponse(c, AddCompuestoResult{
		Success:       true,
		Message:       "Compuesto added to medicamento successfully",
		CompuestoID:   *body.CompuestoID,
		MedicamentoID: medicamentoID,
		Concentracion: concentracion,
		UnidadMedida:  *body.Unidad,
	}, fiber.StatusCreated)
}
