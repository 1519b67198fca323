package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handicraft-catalog/internal/models"
)

func TestBuildHomeSections_Seed(t *testing.T) {
	seed := Seed()
	before := ids(seed)

	sections, err := BuildHomeSections(seed)
	require.NoError(t, err)

	assert.Equal(t, before, ids(seed), "catalog order must be preserved")
	assert.Equal(t, before[:8], ids(sections.Featured))
	assert.Equal(t, before[8:16], ids(sections.NewArrivals))

	for _, p := range sections.Sale {
		assert.True(t, p.HasSalePrice(), "product %d", p.ID)
	}
	assert.LessOrEqual(t, len(sections.Sale), 8)

	require.NotEmpty(t, sections.TopRated)
	assert.Equal(t, 2, sections.TopRated[0].ID)
	for i := 1; i < len(sections.TopRated); i++ {
		assert.GreaterOrEqual(t, sections.TopRated[i-1].RatingValue, sections.TopRated[i].RatingValue)
	}

	assert.Equal(t, []int{8, 9, 10}, ids(sections.Fashion))
	assert.Equal(t, []int{18}, ids(sections.Electronics))
	assert.Equal(t, []int{17}, ids(sections.AgriInputs))
	assert.Len(t, sections.HomeKitchen, 8)
}

func TestBuildHomeSections_HomeKitchenPadding(t *testing.T) {
	catalog := []models.Product{
		{ID: 1, Name: "Clay pot", Category: "Home & Kitchen", Price: 5},
		{ID: 2, Name: "Wooden doll", Category: "Toys", Price: 5},
		{ID: 3, Name: "Kitchen towel", Category: "Textiles", Price: 5},
		{ID: 4, Name: "Saree", Category: "Fashion", Price: 5},
	}

	sections, err := BuildHomeSections(catalog)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2, 4}, ids(sections.HomeKitchen))
}

func TestBuildHomeSections_SmallCatalog(t *testing.T) {
	var catalog []models.Product
	for i := 1; i <= 5; i++ {
		catalog = append(catalog, models.Product{ID: i, Name: fmt.Sprintf("item %d", i), Price: float64(i)})
	}

	sections, err := BuildHomeSections(catalog)
	require.NoError(t, err)
	assert.Equal(t, ids(catalog), ids(sections.NewArrivals))
	assert.Empty(t, sections.Sale)
	assert.NotNil(t, sections.Sale)
}
