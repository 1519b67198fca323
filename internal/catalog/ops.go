// Package catalog contiene las operaciones puras sobre el catálogo:
// filtro por categoría, ordenamiento, descuentos y agregación de la bolsa.
// Ninguna función modifica sus argumentos.
package catalog

import (
	"cmp"
	"math"
	"slices"

	"handicraft-catalog/internal/models"
)

// FilterByCategory retorna los productos de la categoría en el orden del catálogo.
// La categoría centinela "All Products" retorna todos.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if category == models.AllProducts {
		return models.CloneProducts(products)
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p.Clone())
		}
	}
	return filtered
}

// SortProducts retorna una copia ordenada según el criterio.
// El orden es estable: productos con la misma clave conservan el orden del catálogo.
// Un criterio desconocido retorna la copia sin reordenar.
func SortProducts(products []models.Product, criterion models.SortCriterion) ([]models.Product, error) {
	if err := requireAllOperable(products); err != nil {
		return nil, err
	}

	sorted := models.CloneProducts(products)
	key, desc := sortKey(criterion)
	if key == nil {
		return sorted, nil
	}

	slices.SortStableFunc(sorted, func(a, b models.Product) int {
		if desc {
			return cmp.Compare(key(b), key(a))
		}
		return cmp.Compare(key(a), key(b))
	})
	return sorted, nil
}

func sortKey(criterion models.SortCriterion) (key func(models.Product) float64, desc bool) {
	switch criterion {
	case models.SortPopularity:
		return func(p models.Product) float64 { return float64(p.TotalRating) }, true
	case models.SortPriceAsc:
		return models.Product.EffectivePrice, false
	case models.SortPriceDesc:
		return models.Product.EffectivePrice, true
	case models.SortNewest:
		return func(p models.Product) float64 { return float64(p.ID) }, true
	case models.SortRating:
		return func(p models.Product) float64 { return p.RatingValue }, true
	case models.SortDiscount:
		return discountRatio, true
	}
	return nil, false
}

// ComputeDiscountPercent retorna el porcentaje de descuento redondeado.
// Sin precio de oferta, o con precio <= 0, el descuento es 0.
// No se acota a [0,100]: un precio de oferta mayor al original da un valor negativo.
func ComputeDiscountPercent(price float64, salePrice *float64) int {
	if salePrice == nil || *salePrice == 0 || price <= 0 {
		return 0
	}
	// .5 redondea hacia +inf
	return int(math.Floor((price-*salePrice)/price*100 + 0.5))
}

// discountRatio es el descuento sin redondear, usado como clave de orden
func discountRatio(p models.Product) float64 {
	if !p.HasSalePrice() || p.Price <= 0 {
		return 0
	}
	return (p.Price - *p.SalePrice) / p.Price * 100
}

// FindProduct busca un producto por id
func FindProduct(products []models.Product, id int) (models.Product, bool) {
	i := slices.IndexFunc(products, func(p models.Product) bool { return p.ID == id })
	if i < 0 {
		return models.Product{}, false
	}
	return products[i].Clone(), true
}

// Categories retorna las categorías distintas en orden de aparición, precedidas por el centinela
func Categories(products []models.Product) []string {
	categories := []string{models.AllProducts}
	for _, p := range products {
		if p.Category != "" && !slices.Contains(categories, p.Category) {
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// Paginate retorna la página solicitada (base 1) y el total de páginas
func Paginate(products []models.Product, page, pageSize int) ([]models.Product, int) {
	if pageSize <= 0 {
		return models.CloneProducts(products), 1
	}
	pages := len(products) / pageSize
	if len(products)%pageSize != 0 {
		pages++
	}
	totalPages := max(pages, 1)

	// se compara la página antes de multiplicar para no desbordar start
	if page < 1 || page > pages {
		return []models.Product{}, totalPages
	}
	start := (page - 1) * pageSize
	end := start + min(pageSize, len(products)-start)
	return models.CloneProducts(products[start:end]), totalPages
}
