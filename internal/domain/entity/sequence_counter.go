package entity

import "time"

// SequenceCounter consecutivo por (prefijo, año, mes). Se crea implícitamente en el
// primer uso del mes y solo se incrementa; nunca se decrementa ni se reutiliza.
type SequenceCounter struct {
	Prefix    string
	Year      int
	Month     int
	NextValue int64
	UpdatedAt time.Time
}
