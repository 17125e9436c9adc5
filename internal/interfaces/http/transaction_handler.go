package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kardexapp/kardex-api/internal/application/dto"
	"github.com/kardexapp/kardex-api/internal/application/transaction"
	"github.com/kardexapp/kardex-api/internal/domain"
)

// TransactionHandler maneja las peticiones HTTP de transacciones (protegido).
type TransactionHandler struct {
	uc *transaction.CreateTransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *transaction.CreateTransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// parseDateQuery parsea un query param de fecha yyyy-mm-dd; nil si está vacío.
func parseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseToDateQuery parsea el límite superior del rango y lo extiende al último
// instante de ese día: el rango [from, to] es inclusivo y los documentos llevan
// timestamp completo, no solo la fecha.
func parseToDateQuery(c *fiber.Ctx) (*time.Time, error) {
	t, err := parseDateQuery(c, "to")
	if err != nil || t == nil {
		return t, err
	}
	end := t.Add(24*time.Hour - time.Nanosecond)
	return &end, nil
}

// Create godoc
// @Summary      Registrar venta, compra o devolución
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTransactionRequest  true  "type, customer_id o vendor_id, items"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return transactionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener transacción con sus líneas
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return transactionError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar transacciones
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        type    query     string  false  "sale | purchase | return"
// @Param        from    query     string  false  "yyyy-mm-dd"
// @Param        to      query     string  false  "yyyy-mm-dd"
// @Param        limit   query     int     false  "default 20"
// @Param        offset  query     int     false  "default 0"
// @Success      200     {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
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
	resp, err := h.uc.List(c.Context(), c.Query("type"), from, to, page)
	if err != nil {
		return transactionError(c, err)
	}
	return c.JSON(resp)
}

// transactionError mapea errores de dominio a códigos HTTP.
func transactionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrOverpayment):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OVERPAYMENT", Message: "el pago excede el saldo pendiente"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrSequenceAllocation):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SEQUENCE", Message: "no se pudo asignar el consecutivo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
