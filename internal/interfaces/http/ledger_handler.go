package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kardexapp/kardex-api/internal/application/dto"
	"github.com/kardexapp/kardex-api/internal/application/transaction"
)

// LedgerHandler expone la reconstrucción del estado de cuenta (protegido).
type LedgerHandler struct {
	uc *transaction.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *transaction.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Get godoc
// @Summary      Estado de cuenta de un cliente o proveedor
// @Description  Reconstruye el histórico débito/crédito con saldo corrido a partir
//               de las transacciones y pagos confirmados.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        name  query     string  true   "Nombre de la contraparte"
// @Param        role  query     string  true   "customer | vendor"
// @Param        from  query     string  false  "yyyy-mm-dd"
// @Param        to    query     string  false  "yyyy-mm-dd"
// @Success      200   {object}  dto.LedgerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ledger [get]
func (h *LedgerHandler) Get(c *fiber.Ctx) error {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from: formato esperado yyyy-mm-dd"})
	}
	to, err := parseToDateQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to: formato esperado yyyy-mm-dd"})
	}
	resp, err := h.uc.Build(c.Context(), c.Query("name"), c.Query("role"), from, to)
	if err != nil {
		return transactionError(c, err)
	}
	return c.JSON(resp)
}
