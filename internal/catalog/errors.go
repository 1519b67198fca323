package catalog

import "errors"

// ErrProductNotFound se retorna cuando un id no existe en el catálogo
var ErrProductNotFound = errors.New("product not found")

// ValidationError representa un error de validación de un producto
type ValidationError struct {
	ProductID int
	Field     string
	Message   string
}

func (e *ValidationError) Error() string {
	return e.Message
}
