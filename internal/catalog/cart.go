package catalog

import (
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"handicraft-catalog/internal/models"
)

// AggregateCart suma precio efectivo por cantidad de cada línea
func AggregateCart(lines []models.CartLine) (models.CartSummary, error) {
	total := decimal.Zero
	items := 0
	for _, line := range lines {
		if err := requireOperable(line.Product); err != nil {
			return models.CartSummary{}, err
		}
		price := decimal.NewFromFloat(line.Product.EffectivePrice())
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items += line.Quantity
	}

	return models.CartSummary{
		Total: total,
		Items: items,
		Lines: models.CloneLines(lines),
	}, nil
}

// UpdateQuantity ajusta la cantidad de la línea del producto en delta, con mínimo 1.
// Un id desconocido no es un error: se retornan las líneas sin cambios.
func UpdateQuantity(lines []models.CartLine, productID int, delta int) []models.CartLine {
	i := indexOfLine(lines, productID)
	if i < 0 {
		return models.CloneLines(lines)
	}

	updated := make([]models.CartLine, 0, len(lines))
	for j, line := range lines {
		line.Product = line.Product.Clone()
		if j == i {
			line.Quantity = max(1, addQuantity(line.Quantity, delta))
		}
		// con el mínimo de 1 esta condición no descarta líneas válidas
		if line.Quantity > 0 {
			updated = append(updated, line)
		}
	}
	return updated
}

// AddLine agrega el producto a la bolsa o incrementa su cantidad si ya estaba
func AddLine(lines []models.CartLine, product models.Product) []models.CartLine {
	if i := indexOfLine(lines, product.ID); i >= 0 {
		return UpdateQuantity(lines, product.ID, 1)
	}
	added := models.CloneLines(lines)
	return append(added, models.CartLine{Product: product.Clone(), Quantity: 1})
}

// RemoveLine quita la línea del producto; un id desconocido no cambia nada
func RemoveLine(lines []models.CartLine, productID int) []models.CartLine {
	return slices.DeleteFunc(models.CloneLines(lines), func(l models.CartLine) bool {
		return l.Product.ID == productID
	})
}

// addQuantity suma sin desbordar: satura en los límites de int
func addQuantity(quantity, delta int) int {
	switch {
	case delta > 0 && quantity > math.MaxInt-delta:
		return math.MaxInt
	case delta < 0 && quantity < math.MinInt-delta:
		return math.MinInt
	}
	return quantity + delta
}

func indexOfLine(lines []models.CartLine, productID int) int {
	return slices.IndexFunc(lines, func(l models.CartLine) bool { return l.Product.ID == productID })
}
