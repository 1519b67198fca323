package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"handicraft-catalog/internal/repository"
)

type FavoritesHandler struct {
	products  *repository.ProductRepository
	favorites *repository.FavoritesRepository
}

func NewFavoritesHandler(products *repository.ProductRepository, favorites *repository.FavoritesRepository) *FavoritesHandler {
	return &FavoritesHandler{products: products, favorites: favorites}
}

// ListFavorites lista los favoritos
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.favorites.List()})
}

// AddFavorite agrega un producto a favoritos
func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.FindByID(req.ProductID)
	if err != nil {
		respondError(c, err, "failed to add favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.favorites.Add(product)})
}

// RemoveFavorite quita un producto de favoritos
func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	productID, ok := parseProductID(c, "productId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.favorites.Remove(productID)})
}
