package models

// AllProducts es la categoría centinela que desactiva el filtro
const AllProducts = "All Products"

// Product representa un producto artesanal del catálogo
type Product struct {
	ID          int      `json:"id" binding:"required,gt=0"`
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	SalePrice   *float64 `json:"sale_price,omitempty" binding:"omitempty,gt=0"`
	RatingValue float64  `json:"rating_value" binding:"gte=0,lte=5"`
	TotalRating int      `json:"total_rating" binding:"gte=0"`
	Images      []string `json:"images" binding:"required,min=1,dive,required"`
	Label       string   `json:"label,omitempty"`
}

// HasSalePrice indica si el producto tiene precio de oferta
func (p Product) HasSalePrice() bool {
	return p.SalePrice != nil && *p.SalePrice != 0
}

// OnSale indica si el precio de oferta es menor al precio original
func (p Product) OnSale() bool {
	return p.HasSalePrice() && *p.SalePrice < p.Price
}

// EffectivePrice retorna el precio de oferta si existe, si no el precio original
func (p Product) EffectivePrice() float64 {
	if p.HasSalePrice() {
		return *p.SalePrice
	}
	return p.Price
}

// PriceOf construye un precio opcional
func PriceOf(v float64) *float64 {
	return &v
}

// Clone copia el producto sin compartir SalePrice ni Images con el original
func (p Product) Clone() Product {
	if p.SalePrice != nil {
		p.SalePrice = PriceOf(*p.SalePrice)
	}
	if p.Images != nil {
		p.Images = append([]string(nil), p.Images...)
	}
	return p
}

// CloneProducts copia la lista y cada producto
func CloneProducts(products []Product) []Product {
	if products == nil {
		return nil
	}
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
