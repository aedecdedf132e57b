package ingredient

import (
	"context"
	"testing"
	"time"

	"fridge-manager/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	session := uuid.New()

	require.NoError(t, repo.AddIngredient(ctx, &entities.Ingredient{SessionID: session, ID: 1, Name: "Milk"}))

	items, err := repo.GetIngredients(ctx, session)
	require.NoError(t, err)
	items[0].Name = "changed"

	items, err = repo.GetIngredients(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, "Milk", items[0].Name)
}

func TestMemoryRepository_UpdateExpiryDateOnlyTouchesExpiry(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	session := uuid.New()
	expiryDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.AddIngredient(ctx, &entities.Ingredient{SessionID: session, ID: 1, Name: "Milk", Quantity: "1L"}))
	require.NoError(t, repo.UpdateExpiryDate(ctx, session, 1, expiryDate))

	items, err := repo.GetIngredients(ctx, session)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, expiryDate, items[0].ExpiryDate)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, "1L", items[0].Quantity)
}
