package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. Quantity solo se modifica
// vía deltas de stock dentro de una transacción; invariante: Quantity >= 0.
type Product struct {
	ID                string
	Name              string // clave humana única
	Description       string
	Quantity          int64
	Price             decimal.Decimal // precio de venta por defecto
	LowStockThreshold int64           // umbral para el widget de stock bajo del dashboard
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
