package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"handicraft-catalog/internal/models"
)

var validate = newValidator()

// Usa la misma etiqueta que gin para que el binding HTTP y el catálogo compartan reglas
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateProduct valida todos los campos de un producto de la semilla o de una petición
func ValidateProduct(p models.Product) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{
			ProductID: p.ID,
			Field:     fe.Field(),
			Message:   fmt.Sprintf("product %d: field %s failed on %s", p.ID, fe.Field(), fe.Tag()),
		}
	}
	return err
}

// requireOperable verifica los campos que necesitan las operaciones de orden y precio
func requireOperable(p models.Product) error {
	if p.ID <= 0 {
		return &ValidationError{ProductID: p.ID, Field: "id", Message: fmt.Sprintf("product %q: id is required", p.Name)}
	}
	if p.Price <= 0 {
		return &ValidationError{ProductID: p.ID, Field: "price", Message: fmt.Sprintf("product %d: price is required", p.ID)}
	}
	return nil
}

func requireAllOperable(products []models.Product) error {
	for _, p := range products {
		if err := requireOperable(p); err != nil {
			return err
		}
	}
	return nil
}
