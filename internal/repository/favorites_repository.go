package repository

import (
	"sync"

	"handicraft-catalog/internal/catalog"
	"handicraft-catalog/internal/models"
)

// FavoritesRepository guarda la lista de favoritos en memoria
type FavoritesRepository struct {
	mu        sync.RWMutex
	favorites []models.Product
}

func NewFavoritesRepository() *FavoritesRepository {
	return &FavoritesRepository{favorites: []models.Product{}}
}

// List retorna una copia de los favoritos
func (r *FavoritesRepository) List() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return models.CloneProducts(r.favorites)
}

// Add agrega un producto a favoritos
func (r *FavoritesRepository) Add(p models.Product) []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.favorites = catalog.AddFavorite(r.favorites, p)
	return models.CloneProducts(r.favorites)
}

// Remove quita un producto de favoritos por id
func (r *FavoritesRepository) Remove(productID int) []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.favorites = catalog.RemoveFavorite(r.favorites, productID)
	return models.CloneProducts(r.favorites)
}
