package models

import (
	"fmt"
	"strconv"
)

// SortCriterion es el criterio de ordenamiento del listado
type SortCriterion string

const (
	SortPopularity SortCriterion = "popularity"
	SortPriceAsc   SortCriterion = "priceAsc"
	SortPriceDesc  SortCriterion = "priceDesc"
	SortNewest     SortCriterion = "newest"
	SortRating     SortCriterion = "rating"
	SortDiscount   SortCriterion = "discount"
)

// SortOption describe un criterio tal como lo muestra la hoja de ordenamiento
type SortOption struct {
	Index     int           `json:"index"`
	Criterion SortCriterion `json:"criterion"`
	Label     string        `json:"label"`
}

// El orden de este slice define el índice de cada criterio
var sortOptions = []SortOption{
	{Index: 0, Criterion: SortPopularity, Label: "Popularity"},
	{Index: 1, Criterion: SortPriceAsc, Label: "Price: Low to High"},
	{Index: 2, Criterion: SortPriceDesc, Label: "Price: High to Low"},
	{Index: 3, Criterion: SortNewest, Label: "Newest First"},
	{Index: 4, Criterion: SortRating, Label: "Rating"},
	{Index: 5, Criterion: SortDiscount, Label: "Discount"},
}

// SortOptions retorna una copia de los criterios disponibles
func SortOptions() []SortOption {
	out := make([]SortOption, len(sortOptions))
	copy(out, sortOptions)
	return out
}

// Valid indica si el criterio pertenece al conjunto cerrado
func (c SortCriterion) Valid() bool {
	for _, o := range sortOptions {
		if o.Criterion == c {
			return true
		}
	}
	return false
}

// ParseSortCriterion acepta el nombre del criterio o su índice (0..5)
func ParseSortCriterion(s string) (SortCriterion, error) {
	if c := SortCriterion(s); c.Valid() {
		return c, nil
	}
	if idx, err := strconv.Atoi(s); err == nil && idx >= 0 && idx < len(sortOptions) {
		return sortOptions[idx].Criterion, nil
	}
	return "", fmt.Errorf("unknown sort criterion %q", s)
}
