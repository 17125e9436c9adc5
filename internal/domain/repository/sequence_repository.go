package repository

// SequenceRepository puerto del asignador de consecutivos por (prefijo, año, mes).
//
// Next debe ser un único statement atómico de incremento en el storage: dos llamadas
// concurrentes con la misma llave jamás reciben el mismo serial y los seriales son
// estrictamente crecientes en orden de llamada. Se invoca dentro de la transacción del
// documento: el lock de fila del contador serializa a los asignadores concurrentes y,
// si la transacción hace rollback, el incremento se revierte con ella — no quedan
// huecos ni existe un número de documento sin transacción confirmada.
type SequenceRepository interface {
	Next(prefix string, year, month int) (int64, error)
}
