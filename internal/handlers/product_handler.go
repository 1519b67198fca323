package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"handicraft-catalog/internal/catalog"
	"handicraft-catalog/internal/logger"
	"handicraft-catalog/internal/models"
	"handicraft-catalog/internal/repository"
)

type ProductHandler struct {
	repo            *repository.ProductRepository
	defaultSort     models.SortCriterion
	defaultPageSize int
}

func NewProductHandler(repo *repository.ProductRepository, defaultSort models.SortCriterion, defaultPageSize int) *ProductHandler {
	return &ProductHandler{
		repo:            repo,
		defaultSort:     defaultSort,
		defaultPageSize: defaultPageSize,
	}
}

// ProductDetail es la respuesta del detalle de producto
type ProductDetail struct {
	models.Product
	EffectivePrice  float64 `json:"effective_price"`
	DiscountPercent int     `json:"discount_percent"`
	OnSale          bool    `json:"on_sale"`
}

func newProductDetail(p models.Product) ProductDetail {
	return ProductDetail{
		Product:         p,
		EffectivePrice:  p.EffectivePrice(),
		DiscountPercent: catalog.ComputeDiscountPercent(p.Price, p.SalePrice),
		OnSale:          p.OnSale(),
	}
}

// ListProducts lista productos filtrados por categoría y ordenados
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var query models.BrowseQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if s := c.Query("sort"); s != "" {
		sort, err := models.ParseSortCriterion(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		query.Sort = sort
	}
	query = query.Normalize(h.defaultSort, h.defaultPageSize)

	page, err := h.repo.FindAll(query)
	if err != nil {
		respondError(c, err, "failed to list products")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetProduct obtiene el detalle de un producto
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseProductID(c, "id")
	if !ok {
		return
	}

	product, err := h.repo.FindByID(id)
	if err != nil {
		respondError(c, err, "failed to get product")
		return
	}

	c.JSON(http.StatusOK, newProductDetail(product))
}

// ListCategories lista las categorías disponibles
func (h *ProductHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.repo.Categories()})
}

// ListSortOptions lista los criterios de ordenamiento
func (h *ProductHandler) ListSortOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data":    models.SortOptions(),
		"default": h.defaultSort,
	})
}

// Home retorna las secciones de la pantalla principal
func (h *ProductHandler) Home(c *gin.Context) {
	sections, err := h.repo.HomeSections()
	if err != nil {
		respondError(c, err, "failed to build home sections")
		return
	}
	c.JSON(http.StatusOK, sections)
}

// --- auxiliares ---

func parseProductID(c *gin.Context, param string) (int, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return 0, false
	}
	return id, true
}

// respondError traduce errores del dominio a códigos HTTP
func respondError(c *gin.Context, err error, fallback string) {
	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, repository.ErrBagNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "bag not found"})
	default:
		logger.WithComponent("handlers").WithError(err).Error(fallback)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
