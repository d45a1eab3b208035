package entity

import "github.com/shopspring/decimal"

// Customer comprador al que se emite la boleta.
// Solo se usan Name e ID/Email (este último para armar la key del archivo).
type Customer struct {
	Name  string
	ID    string
	Email string
}

// Identifier devuelve ID, o Email si no hay ID, o "user" si no hay ninguno.
func (c Customer) Identifier() string {
	if c.ID != "" {
		return c.ID
	}
	if c.Email != "" {
		return c.Email
	}
	return "user"
}

// Transaction la acción (reserva/compra de propiedad) que origina la boleta.
// No se exige AmountPaid <= Price: el saldo pendiente puede quedar negativo y se imprime tal cual.
type Transaction struct {
	Name       string
	Price      decimal.Decimal
	AmountPaid decimal.Decimal

	// AmountPaidLabel lo pagado tal como llegó en la petición; vacío = AmountPaid.
	AmountPaidLabel string
}

// PaidLabel texto de lo pagado para la ficha del comprador.
func (t Transaction) PaidLabel() string {
	if t.AmountPaidLabel != "" {
		return t.AmountPaidLabel
	}
	return t.AmountPaid.String()
}

// OutstandingBalance precio menos lo pagado, sin acotar a cero.
func (t Transaction) OutstandingBalance() decimal.Decimal {
	return t.Price.Sub(t.AmountPaid)
}
