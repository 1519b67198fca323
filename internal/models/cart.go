package models

import "github.com/shopspring/decimal"

// CartLine es una línea de la bolsa: producto y cantidad (>= 1)
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartSummary es el resultado de agregar las líneas de una bolsa
type CartSummary struct {
	Total decimal.Decimal `json:"total"`
	Items int             `json:"items"`
	Lines []CartLine      `json:"lines"`
}

// CloneLines copia las líneas sin compartir los productos
func CloneLines(lines []CartLine) []CartLine {
	if lines == nil {
		return nil
	}
	out := make([]CartLine, len(lines))
	for i, l := range lines {
		out[i] = CartLine{Product: l.Product.Clone(), Quantity: l.Quantity}
	}
	return out
}
