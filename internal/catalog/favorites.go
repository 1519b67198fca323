package catalog

import (
	"slices"

	"handicraft-catalog/internal/models"
)

// AddFavorite agrega el producto si todavía no está en favoritos
func AddFavorite(favorites []models.Product, product models.Product) []models.Product {
	if _, ok := FindProduct(favorites, product.ID); ok {
		return models.CloneProducts(favorites)
	}
	return append(models.CloneProducts(favorites), product.Clone())
}

// RemoveFavorite quita el producto de favoritos por id
func RemoveFavorite(favorites []models.Product, productID int) []models.Product {
	return slices.DeleteFunc(models.CloneProducts(favorites), func(p models.Product) bool {
		return p.ID == productID
	})
}
