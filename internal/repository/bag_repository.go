package repository

import (
	"sync"

	"github.com/google/uuid"

	"handicraft-catalog/internal/models"
)

// BagRepository guarda las bolsas en memoria; se pierden al reiniciar
type BagRepository struct {
	mu   sync.RWMutex
	bags map[uuid.UUID][]models.CartLine
}

func NewBagRepository() *BagRepository {
	return &BagRepository{
		bags: make(map[uuid.UUID][]models.CartLine),
	}
}

// Create crea una bolsa vacía
func (r *BagRepository) Create() uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	r.bags[id] = []models.CartLine{}
	return id
}

// Get obtiene una copia de las líneas de la bolsa
func (r *BagRepository) Get(id uuid.UUID) ([]models.CartLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines, ok := r.bags[id]
	if !ok {
		return nil, ErrBagNotFound
	}
	return models.CloneLines(lines), nil
}

// Update reemplaza las líneas con el resultado de fn, de forma atómica
func (r *BagRepository) Update(id uuid.UUID, fn func([]models.CartLine) []models.CartLine) ([]models.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines, ok := r.bags[id]
	if !ok {
		return nil, ErrBagNotFound
	}

	updated := fn(models.CloneLines(lines))
	r.bags[id] = updated
	return models.CloneLines(updated), nil
}
