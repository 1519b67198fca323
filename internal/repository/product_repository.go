package repository

import (
	"fmt"
	"slices"

	"handicraft-catalog/internal/cache"
	"handicraft-catalog/internal/catalog"
	"handicraft-catalog/internal/models"
)

// ProductRepository sirve el catálogo estático en memoria
type ProductRepository struct {
	products   []models.Product
	categories []string
	pages      *cache.Cache[models.ProductPage]
}

// NewProductRepository valida la semilla y crea el repositorio.
// El caché es opcional: con nil cada listado se calcula de nuevo.
func NewProductRepository(products []models.Product, pages *cache.Cache[models.ProductPage]) (*ProductRepository, error) {
	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if err := catalog.ValidateProduct(p); err != nil {
			return nil, err
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProduct, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return &ProductRepository{
		products:   products,
		categories: catalog.Categories(products),
		pages:      pages,
	}, nil
}

// Count retorna el número de productos del catálogo
func (r *ProductRepository) Count() int {
	return len(r.products)
}

// FindByID obtiene un producto por ID
func (r *ProductRepository) FindByID(id int) (models.Product, error) {
	p, ok := catalog.FindProduct(r.products, id)
	if !ok {
		return models.Product{}, catalog.ErrProductNotFound
	}
	return p, nil
}

// FindAll filtra, ordena y pagina el catálogo. La consulta debe venir normalizada.
func (r *ProductRepository) FindAll(q models.BrowseQuery) (models.ProductPage, error) {
	if r.pages == nil {
		return r.buildPage(q)
	}

	cacheKey := fmt.Sprintf("products:list:p%d_s%d_cat:%s_sort:%s", q.Page, q.PageSize, q.Category, q.Sort)
	if cached, found := r.pages.GetValue(cacheKey); found {
		cached.Data = models.CloneProducts(cached.Data)
		return cached, nil
	}

	page, err := r.buildPage(q)
	if err != nil {
		return page, err
	}

	// Las páginas vacías (categoría inexistente o página fuera de rango) no se cachean
	if len(page.Data) > 0 {
		r.pages.Set(cacheKey, page)
		page.Data = models.CloneProducts(page.Data)
	}
	return page, nil
}

func (r *ProductRepository) buildPage(q models.BrowseQuery) (models.ProductPage, error) {
	filtered := catalog.FilterByCategory(r.products, q.Category)
	sorted, err := catalog.SortProducts(filtered, q.Sort)
	if err != nil {
		return models.ProductPage{}, err
	}

	data, totalPages := catalog.Paginate(sorted, q.Page, q.PageSize)
	return models.ProductPage{
		Data:       data,
		Total:      len(sorted),
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages,
		Category:   q.Category,
		Sort:       q.Sort,
	}, nil
}

// Categories lista las categorías del catálogo
func (r *ProductRepository) Categories() []string {
	return slices.Clone(r.categories)
}

// HomeSections arma las secciones de la pantalla principal
func (r *ProductRepository) HomeSections() (models.HomeSections, error) {
	return catalog.BuildHomeSections(r.products)
}
