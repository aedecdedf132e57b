// Package session gives every browser session its own fridge: an inventory
// seeded from the shared sample plus the open add-ingredient draft.
package session

import (
	"context"
	"fridge-manager/domain"
	"fridge-manager/pkg/expiry"
	"fridge-manager/pkg/ingredient"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"sync"
)

type (
	SessionManager interface {
		Resolve(ctx context.Context, raw string) (uuid.UUID, bool, error)
		GetDraft(sessionID uuid.UUID) (expiry.Draft, error)
		UpdateDraft(sessionID uuid.UUID, update func(draft *expiry.Draft)) (expiry.Draft, error)
		ResetDraft(sessionID uuid.UUID) (expiry.Draft, error)
		SubmitDraft(ctx context.Context, sessionID uuid.UUID) (domain.IngredientResponse, error)
		End(ctx context.Context, sessionID uuid.UUID) error
	}

	sessionManager struct {
		ingredientService ingredient.IngredientService

		mu     sync.Mutex
		drafts map[uuid.UUID]*expiry.Draft
	}
)

func NewSessionManager(ingredientService ingredient.IngredientService) SessionManager {
	return &sessionManager{
		ingredientService: ingredientService,
		drafts:            make(map[uuid.UUID]*expiry.Draft),
	}
}

// Resolve returns the session named by raw, registering it when this
// process has not seen it yet. An empty or malformed raw value starts a new
// session; the boolean reports whether the id was minted here.
func (m *sessionManager) Resolve(ctx context.Context, raw string) (uuid.UUID, bool, error) {
	sessionID, err := uuid.Parse(raw)
	created := false
	if err != nil {
		sessionID = uuid.New()
		created = true
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, known := m.drafts[sessionID]; known {
		return sessionID, false, nil
	}

	// seeded before it becomes visible to concurrent requests
	if err := m.ingredientService.SeedSession(ctx, sessionID); err != nil {
		return uuid.Nil, false, err
	}
	draft := expiry.NewDraft(m.ingredientService.Now())
	m.drafts[sessionID] = &draft

	log.Infof("session %s registered", sessionID)
	return sessionID, created, nil
}

func (m *sessionManager) GetDraft(sessionID uuid.UUID) (expiry.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft, ok := m.drafts[sessionID]
	if !ok {
		return expiry.Draft{}, domain.ErrSessionNotFound
	}
	return *draft, nil
}

func (m *sessionManager) UpdateDraft(sessionID uuid.UUID, update func(draft *expiry.Draft)) (expiry.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft, ok := m.drafts[sessionID]
	if !ok {
		return expiry.Draft{}, domain.ErrSessionNotFound
	}
	update(draft)
	return *draft, nil
}

func (m *sessionManager) ResetDraft(sessionID uuid.UUID) (expiry.Draft, error) {
	today := m.ingredientService.Now()
	return m.UpdateDraft(sessionID, func(draft *expiry.Draft) {
		draft.Reset(today)
	})
}

// SubmitDraft commits the draft to the inventory and resets it. A rejected
// draft stays as it was so the dialog can be corrected.
func (m *sessionManager) SubmitDraft(ctx context.Context, sessionID uuid.UUID) (domain.IngredientResponse, error) {
	draft, err := m.GetDraft(sessionID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	res, err := m.ingredientService.AddIngredient(ctx, sessionID, draft)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	if _, err := m.ResetDraft(sessionID); err != nil {
		return domain.IngredientResponse{}, err
	}
	return res, nil
}

func (m *sessionManager) End(ctx context.Context, sessionID uuid.UUID) error {
	m.mu.Lock()
	_, ok := m.drafts[sessionID]
	delete(m.drafts, sessionID)
	m.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}
	return m.ingredientService.ClearSession(ctx, sessionID)
}
