package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kardexapp/kardex-api/internal/application/dto"
	"github.com/kardexapp/kardex-api/internal/application/transaction"
)

// PaymentHandler maneja las peticiones HTTP de pagos contra saldo (protegido).
type PaymentHandler struct {
	uc *transaction.CreatePaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *transaction.CreatePaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar abono de cliente o pago a proveedor
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreatePaymentRequest  true  "type, customer_id o vendor_id, amount"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return transactionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar pagos
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        type    query     string  false  "customer_payment | vendor_payment"
// @Param        from    query     string  false  "yyyy-mm-dd"
// @Param        to      query     string  false  "yyyy-mm-dd"
// @Param        limit   query     int     false  "default 20"
// @Param        offset  query     int     false  "default 0"
// @Success      200     {object}  dto.PaymentListResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from: formato esperado yyyy-mm-dd"})
	}
	to, err := parseToDateQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to: formato esperado yyyy-mm-dd"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	resp, err := h.uc.List(c.Context(), c.Query("type"), c.Query("counterparty_id"), from, to, page)
	if err != nil {
		return transactionError(c, err)
	}
	return c.JSON(resp)
}
