package ingredient

import (
	"context"
	"fridge-manager/domain"
	"fridge-manager/entities"
	"fridge-manager/pkg/expiry"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"strings"
	"sync"
	"time"
)

// RefreshPolicyDays is how far a refresh pushes the expiry date, counted
// from today. It ignores the ingredient's catalog shelf life.
const RefreshPolicyDays = 7

type (
	IngredientService interface {
		AddIngredient(ctx context.Context, sessionID uuid.UUID, draft expiry.Draft) (domain.IngredientResponse, error)
		RefreshExpiry(ctx context.Context, sessionID uuid.UUID, id int) error
		DeleteIngredient(ctx context.Context, sessionID uuid.UUID, id int) error
		GetIngredients(ctx context.Context, sessionID uuid.UUID) ([]domain.IngredientResponse, error)
		GetUnexpiredIngredients(ctx context.Context, sessionID uuid.UUID) ([]domain.IngredientResponse, error)
		GetExpiringIngredients(ctx context.Context, sessionID uuid.UUID, days int) ([]domain.IngredientResponse, error)
		GetUnexpiredSamples(ctx context.Context) ([]domain.IngredientResponse, error)
		SeedSession(ctx context.Context, sessionID uuid.UUID) error
		ClearSession(ctx context.Context, sessionID uuid.UUID) error
		Now() time.Time
		Location() *time.Location
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		loc                  *time.Location
		clock                func() time.Time

		// serialises id assignment
		mu sync.Mutex
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, loc *time.Location, clock func() time.Time) IngredientService {
	if loc == nil {
		loc = time.Local
	}
	if clock == nil {
		clock = time.Now
	}
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		loc:                  loc,
		clock:                clock,
	}
}

func (s *ingredientService) Now() time.Time {
	return s.clock().In(s.loc)
}

func (s *ingredientService) Location() *time.Location {
	return s.loc
}

func (s *ingredientService) AddIngredient(ctx context.Context, sessionID uuid.UUID, draft expiry.Draft) (domain.IngredientResponse, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return domain.IngredientResponse{}, domain.ErrNameRequired
	}
	if strings.TrimSpace(draft.Quantity) == "" {
		return domain.IngredientResponse{}, domain.ErrQuantityRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.ingredientRepository.GetIngredients(ctx, sessionID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	ingredient := &entities.Ingredient{
		SessionID:  sessionID,
		ID:         NextID(existing),
		Name:       draft.Name,
		Quantity:   draft.Quantity,
		ExpiryDate: draft.ExpiryDate,
	}

	if err := s.ingredientRepository.AddIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	log.Infof("session %s: added ingredient %d (%s)", sessionID, ingredient.ID, ingredient.Name)
	return toResponse(ingredient), nil
}

func (s *ingredientService) RefreshExpiry(ctx context.Context, sessionID uuid.UUID, id int) error {
	expiryDate := expiry.AddDays(s.Now(), RefreshPolicyDays)
	return s.ingredientRepository.UpdateExpiryDate(ctx, sessionID, id, expiryDate)
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, sessionID uuid.UUID, id int) error {
	return s.ingredientRepository.DeleteIngredient(ctx, sessionID, id)
}

func (s *ingredientService) GetIngredients(ctx context.Context, sessionID uuid.UUID) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, item := range ingredients {
		response = append(response, toResponse(item))
	}
	return response, nil
}

func (s *ingredientService) GetUnexpiredIngredients(ctx context.Context, sessionID uuid.UUID) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return FilterUnexpired(ingredients, s.Now()), nil
}

// GetExpiringIngredients returns unexpired records whose expiry date is at
// most days calendar days away.
func (s *ingredientService) GetExpiringIngredients(ctx context.Context, sessionID uuid.UUID, days int) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	limit := expiry.AddDays(now, days)

	response := make([]domain.IngredientResponse, 0)
	for _, item := range ingredients {
		if item.ExpiryDate.After(now) && !item.ExpiryDate.After(limit) {
			response = append(response, toResponse(item))
		}
	}
	return response, nil
}

// GetUnexpiredSamples filters the shared sample against the current time.
// It never touches session state.
func (s *ingredientService) GetUnexpiredSamples(_ context.Context) ([]domain.IngredientResponse, error) {
	sample := SampleIngredients(s.loc)
	ingredients := make([]*entities.Ingredient, 0, len(sample))
	for i := range sample {
		ingredients = append(ingredients, &sample[i])
	}
	return FilterUnexpired(ingredients, s.Now()), nil
}

// SeedSession loads the sample into a session that has no records yet.
func (s *ingredientService) SeedSession(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.ingredientRepository.GetIngredients(ctx, sessionID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, item := range SampleIngredients(s.loc) {
		item.SessionID = sessionID
		if err := s.ingredientRepository.AddIngredient(ctx, &item); err != nil {
			return err
		}
	}
	return nil
}

func (s *ingredientService) ClearSession(ctx context.Context, sessionID uuid.UUID) error {
	return s.ingredientRepository.DeleteSession(ctx, sessionID)
}

// NextID is one more than the largest id present, or 1 for an empty list.
func NextID(ingredients []*entities.Ingredient) int {
	maxID := 0
	for _, item := range ingredients {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID + 1
}

// FilterUnexpired keeps records whose expiry date is strictly after now,
// preserving order. Unset expiry dates never qualify.
func FilterUnexpired(ingredients []*entities.Ingredient, now time.Time) []domain.IngredientResponse {
	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, item := range ingredients {
		if item.ExpiryDate.After(now) {
			response = append(response, toResponse(item))
		}
	}
	return response
}

func toResponse(item *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:         item.ID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		ExpiryDate: expiry.FormatDate(item.ExpiryDate),
	}
}
