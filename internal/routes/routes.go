package routes

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"handicraft-catalog/internal/handlers"
	"handicraft-catalog/internal/logger"
)

// Handlers agrupa los handlers que expone la API
type Handlers struct {
	Products  *handlers.ProductHandler
	Bags      *handlers.BagHandler
	Favorites *handlers.FavoritesHandler
}

// NewRouter crea el router con middlewares y rutas
func NewRouter(h Handlers, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logger.Middleware(), corsMiddleware(allowedOrigins))
	RegisterRoutes(router, h)
	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	return cors.New(cfg)
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		v1.GET("/products", h.Products.ListProducts)
		v1.GET("/products/:id", h.Products.GetProduct)
		v1.GET("/categories", h.Products.ListCategories)
		v1.GET("/sort-options", h.Products.ListSortOptions)
		v1.GET("/home", h.Products.Home)

		v1.POST("/bags", h.Bags.CreateBag)
		v1.GET("/bags/:id", h.Bags.GetBag)
		v1.POST("/bags/:id/items", h.Bags.AddItem)
		v1.PATCH("/bags/:id/items/:productId", h.Bags.UpdateQuantity)
		v1.DELETE("/bags/:id/items/:productId", h.Bags.RemoveItem)

		v1.GET("/favorites", h.Favorites.ListFavorites)
		v1.POST("/favorites", h.Favorites.AddFavorite)
		v1.DELETE("/favorites/:productId", h.Favorites.RemoveFavorite)
	}
}
