package repository

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handicraft-catalog/internal/catalog"
	"handicraft-catalog/internal/models"
)

func TestBagRepository(t *testing.T) {
	repo := NewBagRepository()
	id := repo.Create()

	lines, err := repo.Get(id)
	require.NoError(t, err)
	assert.Empty(t, lines)

	doll := models.Product{ID: 1, Price: 10}
	updated, err := repo.Update(id, func(lines []models.CartLine) []models.CartLine {
		return catalog.AddLine(lines, doll)
	})
	require.NoError(t, err)
	require.Len(t, updated, 1)

	// la copia retornada no comparte memoria con la bolsa guardada
	updated[0].Quantity = 99
	stored, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 1, stored[0].Quantity)

	_, err = repo.Get(uuid.New())
	assert.ErrorIs(t, err, ErrBagNotFound)
	_, err = repo.Update(uuid.New(), func(l []models.CartLine) []models.CartLine { return l })
	assert.ErrorIs(t, err, ErrBagNotFound)
}

func TestBagRepository_ConcurrentAdds(t *testing.T) {
	repo := NewBagRepository()
	id := repo.Create()
	doll := models.Product{ID: 1, Price: 10}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Update(id, func(lines []models.CartLine) []models.CartLine {
				return catalog.AddLine(lines, doll)
			})
		}()
	}
	wg.Wait()

	lines, err := repo.Get(id)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 50, lines[0].Quantity)
}

func TestFavoritesRepository(t *testing.T) {
	repo := NewFavoritesRepository()
	assert.Empty(t, repo.List())

	repo.Add(models.Product{ID: 1})
	repo.Add(models.Product{ID: 2})
	repo.Add(models.Product{ID: 1})
	assert.Len(t, repo.List(), 2)

	left := repo.Remove(1)
	require.Len(t, left, 1)
	assert.Equal(t, 2, left[0].ID)
	assert.Len(t, repo.Remove(99), 1)
}
