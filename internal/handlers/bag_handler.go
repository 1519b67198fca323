package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"handicraft-catalog/internal/catalog"
	"handicraft-catalog/internal/models"
	"handicraft-catalog/internal/repository"
)

type BagHandler struct {
	products *repository.ProductRepository
	bags     *repository.BagRepository
}

func NewBagHandler(products *repository.ProductRepository, bags *repository.BagRepository) *BagHandler {
	return &BagHandler{products: products, bags: bags}
}

type addItemRequest struct {
	ProductID int `json:"product_id" binding:"required,gt=0"`
}

type updateQuantityRequest struct {
	Delta int `json:"delta" binding:"required,min=-1000,max=1000"`
}

// BagResponse es la bolsa con su total a dos decimales
type BagResponse struct {
	ID    uuid.UUID         `json:"id"`
	Lines []models.CartLine `json:"lines"`
	Items int               `json:"items"`
	Total string            `json:"total"`
}

// CreateBag crea una bolsa vacía
func (h *BagHandler) CreateBag(c *gin.Context) {
	id := h.bags.Create()
	c.JSON(http.StatusCreated, BagResponse{ID: id, Lines: []models.CartLine{}, Total: "0.00"})
}

// GetBag obtiene la bolsa con su total
func (h *BagHandler) GetBag(c *gin.Context) {
	id, ok := parseBagID(c)
	if !ok {
		return
	}

	lines, err := h.bags.Get(id)
	if err != nil {
		respondError(c, err, "failed to get bag")
		return
	}
	h.respondBag(c, http.StatusOK, id, lines)
}

// AddItem agrega un producto a la bolsa
func (h *BagHandler) AddItem(c *gin.Context) {
	id, ok := parseBagID(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.products.FindByID(req.ProductID)
	if err != nil {
		respondError(c, err, "failed to add item")
		return
	}

	lines, err := h.bags.Update(id, func(lines []models.CartLine) []models.CartLine {
		return catalog.AddLine(lines, product)
	})
	if err != nil {
		respondError(c, err, "failed to add item")
		return
	}
	h.respondBag(c, http.StatusOK, id, lines)
}

// UpdateQuantity ajusta la cantidad de una línea; un producto ausente no cambia la bolsa
func (h *BagHandler) UpdateQuantity(c *gin.Context) {
	id, ok := parseBagID(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c, "productId")
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines, err := h.bags.Update(id, func(lines []models.CartLine) []models.CartLine {
		return catalog.UpdateQuantity(lines, productID, req.Delta)
	})
	if err != nil {
		respondError(c, err, "failed to update quantity")
		return
	}
	h.respondBag(c, http.StatusOK, id, lines)
}

// RemoveItem quita una línea de la bolsa
func (h *BagHandler) RemoveItem(c *gin.Context) {
	id, ok := parseBagID(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c, "productId")
	if !ok {
		return
	}

	lines, err := h.bags.Update(id, func(lines []models.CartLine) []models.CartLine {
		return catalog.RemoveLine(lines, productID)
	})
	if err != nil {
		respondError(c, err, "failed to remove item")
		return
	}
	h.respondBag(c, http.StatusOK, id, lines)
}

func (h *BagHandler) respondBag(c *gin.Context, status int, id uuid.UUID, lines []models.CartLine) {
	summary, err := catalog.AggregateCart(lines)
	if err != nil {
		respondError(c, err, "failed to compute bag total")
		return
	}

	c.JSON(status, BagResponse{
		ID:    id,
		Lines: summary.Lines,
		Items: summary.Items,
		Total: summary.Total.StringFixed(2),
	})
}

func parseBagID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bag ID"})
		return uuid.Nil, false
	}
	return id, true
}
