package models

// BrowseQuery es el estado de la pantalla de categoría: filtro, orden y página
type BrowseQuery struct {
	Category string        `form:"category"`
	Sort     SortCriterion `form:"-"`
	Page     int           `form:"page"`
	PageSize int           `form:"page_size"`
}

// Normalize completa los valores por defecto
func (q BrowseQuery) Normalize(defaultSort SortCriterion, defaultPageSize int) BrowseQuery {
	if q.Category == "" {
		q.Category = AllProducts
	}
	if !q.Sort.Valid() {
		q.Sort = defaultSort
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = defaultPageSize
	}
	return q
}

// ProductPage es una página del listado
type ProductPage struct {
	Data       []Product     `json:"data"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	Category   string        `json:"category"`
	Sort       SortCriterion `json:"sort"`
}

// HomeSections agrupa las secciones de la pantalla principal
type HomeSections struct {
	Featured    []Product `json:"featured"`
	Sale        []Product `json:"sale"`
	TopRated    []Product `json:"top_rated"`
	NewArrivals []Product `json:"new_arrivals"`
	Fashion     []Product `json:"fashion"`
	HomeKitchen []Product `json:"home_kitchen"`
	Electronics []Product `json:"electronics"`
	AgriInputs  []Product `json:"agri_inputs"`
}
