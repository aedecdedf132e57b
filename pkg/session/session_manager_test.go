package session

import (
	"context"
	"testing"
	"time"

	"fridge-manager/domain"
	"fridge-manager/pkg/expiry"
	"fridge-manager/pkg/ingredient"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() (SessionManager, ingredient.IngredientService) {
	clock := func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }
	service := ingredient.NewIngredientService(ingredient.NewMemoryRepository(), time.UTC, clock)
	return NewSessionManager(service), service
}

func TestResolve(t *testing.T) {
	manager, service := newTestManager()
	ctx := context.Background()

	t.Run("empty value mints a seeded session", func(t *testing.T) {
		id, created, err := manager.Resolve(ctx, "")
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEqual(t, uuid.Nil, id)

		items, err := service.GetIngredients(ctx, id)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("malformed value mints a new session", func(t *testing.T) {
		_, created, err := manager.Resolve(ctx, "not-a-uuid")
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("known id is reused", func(t *testing.T) {
		id, _, err := manager.Resolve(ctx, "")
		require.NoError(t, err)

		again, created, err := manager.Resolve(ctx, id.String())
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, id, again)
	})

	t.Run("well-formed unknown id is adopted", func(t *testing.T) {
		raw := uuid.New()
		id, created, err := manager.Resolve(ctx, raw.String())
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, raw, id)
	})
}

func TestDraftLifecycle(t *testing.T) {
	manager, service := newTestManager()
	ctx := context.Background()
	id, _, err := manager.Resolve(ctx, "")
	require.NoError(t, err)

	draft, err := manager.GetDraft(id)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", expiry.FormatDate(draft.PurchaseDate))

	draft, err = manager.UpdateDraft(id, func(d *expiry.Draft) {
		d.SetName("Eggs")
		d.SetQuantity("6")
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-22", expiry.FormatDate(draft.ExpiryDate))

	res, err := manager.SubmitDraft(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.IngredientResponse{ID: 4, Name: "Eggs", Quantity: "6", ExpiryDate: "2024-01-22"}, res)

	draft, err = manager.GetDraft(id)
	require.NoError(t, err)
	assert.Equal(t, expiry.NewDraft(service.Now()), draft)
}

func TestSubmitDraft_RejectedDraftIsKept(t *testing.T) {
	manager, _ := newTestManager()
	ctx := context.Background()
	id, _, err := manager.Resolve(ctx, "")
	require.NoError(t, err)

	_, err = manager.UpdateDraft(id, func(d *expiry.Draft) { d.SetName("Milk") })
	require.NoError(t, err)

	_, err = manager.SubmitDraft(ctx, id)
	assert.ErrorIs(t, err, domain.ErrQuantityRequired)

	draft, err := manager.GetDraft(id)
	require.NoError(t, err)
	assert.Equal(t, "Milk", draft.Name)
}

func TestUnknownSession(t *testing.T) {
	manager, _ := newTestManager()

	_, err := manager.GetDraft(uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	err = manager.End(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestEnd(t *testing.T) {
	manager, service := newTestManager()
	ctx := context.Background()
	id, _, err := manager.Resolve(ctx, "")
	require.NoError(t, err)

	require.NoError(t, manager.End(ctx, id))

	items, err := service.GetIngredients(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = manager.GetDraft(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
