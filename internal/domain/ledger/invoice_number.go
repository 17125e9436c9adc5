// Package ledger contiene la lógica pura del motor de ledger: numeración de
// documentos y reconstrucción del estado de cuenta de una contraparte.
// No tiene dependencias de infraestructura; todo es calculable y testeable en memoria.
package ledger

import (
	"fmt"
	"time"

	"github.com/kardexapp/kardex-api/internal/domain/entity"
)

// FormatInvoiceNumber arma el número de documento legible: {PREFIX}{YYYY}{MM}{DD}{SERIAL}.
// El serial va con padding a 3 dígitos (001, 002, ...); por encima de 999 crece sin truncarse.
func FormatInvoiceNumber(prefix string, date time.Time, serial int64) string {
	return fmt.Sprintf("%s%s%03d", prefix, date.Format("20060102"), serial)
}

// PrefixForTransactionType devuelve el prefijo de numeración del tipo de transacción.
func PrefixForTransactionType(txType string) (string, bool) {
	switch txType {
	case entity.TransactionTypeSale:
		return entity.PrefixSale, true
	case entity.TransactionTypePurchase:
		return entity.PrefixPurchase, true
	case entity.TransactionTypeReturn:
		return entity.PrefixReturn, true
	}
	return "", false
}

// PrefixForPaymentType devuelve el prefijo de numeración del tipo de pago.
func PrefixForPaymentType(paymentType string) (string, bool) {
	switch paymentType {
	case entity.PaymentTypeCustomer:
		return entity.PrefixCustomerPayment, true
	case entity.PaymentTypeVendor:
		return entity.PrefixVendorPayment, true
	}
	return "", false
}
