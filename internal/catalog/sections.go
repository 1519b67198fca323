package catalog

import (
	"slices"
	"strings"

	"handicraft-catalog/internal/models"
)

const sectionSize = 8

// BuildHomeSections arma las secciones de la pantalla principal sin reordenar el catálogo
func BuildHomeSections(products []models.Product) (models.HomeSections, error) {
	topRated, err := SortProducts(products, models.SortRating)
	if err != nil {
		return models.HomeSections{}, err
	}

	newArrivals := head(products, sectionSize)
	if len(products) >= 2*sectionSize {
		newArrivals = models.CloneProducts(products[sectionSize : 2*sectionSize])
	}

	return models.HomeSections{
		Featured:    head(products, sectionSize),
		Sale:        head(filter(products, models.Product.HasSalePrice), sectionSize),
		TopRated:    head(topRated, sectionSize),
		NewArrivals: newArrivals,
		Fashion:     head(inCategories(products, "Fashion", "Ethnic Wear"), sectionSize),
		HomeKitchen: homeKitchen(products),
		Electronics: head(inCategories(products, "Electronics"), sectionSize),
		AgriInputs:  head(inCategories(products, "Agri Inputs"), sectionSize),
	}, nil
}

// homeKitchen se completa con otros productos hasta llenar la sección
func homeKitchen(products []models.Product) []models.Product {
	section := head(filter(products, func(p models.Product) bool {
		name := strings.ToLower(p.Name)
		return slices.Contains([]string{"Home & Kitchen", "Home", "Kitchen"}, p.Category) ||
			strings.Contains(name, "kitchen") ||
			strings.Contains(name, "home")
	}), sectionSize)

	for _, p := range products {
		if len(section) >= sectionSize {
			break
		}
		if _, ok := FindProduct(section, p.ID); !ok {
			section = append(section, p)
		}
	}
	return section
}

func inCategories(products []models.Product, categories ...string) []models.Product {
	return filter(products, func(p models.Product) bool {
		return slices.Contains(categories, p.Category)
	})
}

func filter(products []models.Product, keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func head(products []models.Product, n int) []models.Product {
	out := make([]models.Product, min(n, len(products)))
	for i := range out {
		out[i] = products[i].Clone()
	}
	return out
}
