package ingredient

import (
	"context"
	"fridge-manager/entities"
	"github.com/google/uuid"
	"sync"
	"time"
)

type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID][]entities.Ingredient
}

// NewMemoryRepository keeps every session's inventory in process memory;
// nothing survives a restart.
func NewMemoryRepository() IngredientRepository {
	return &memoryRepository{
		sessions: make(map[uuid.UUID][]entities.Ingredient),
	}
}

func (r *memoryRepository) GetIngredients(_ context.Context, sessionID uuid.UUID) ([]*entities.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.sessions[sessionID]
	out := make([]*entities.Ingredient, 0, len(records))
	for i := range records {
		record := records[i]
		out = append(out, &record)
	}
	return out, nil
}

func (r *memoryRepository) AddIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	ingredient.CreatedAt = now
	ingredient.UpdatedAt = now
	r.sessions[ingredient.SessionID] = append(r.sessions[ingredient.SessionID], *ingredient)
	return nil
}

func (r *memoryRepository) UpdateExpiryDate(_ context.Context, sessionID uuid.UUID, id int, expiryDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.sessions[sessionID]
	for i := range records {
		if records[i].ID == id {
			records[i].ExpiryDate = expiryDate
			records[i].UpdatedAt = time.Now()
		}
	}
	return nil
}

func (r *memoryRepository) DeleteIngredient(_ context.Context, sessionID uuid.UUID, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.sessions[sessionID]
	kept := make([]entities.Ingredient, 0, len(records))
	for _, record := range records {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	r.sessions[sessionID] = kept
	return nil
}

func (r *memoryRepository) DeleteSession(_ context.Context, sessionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
