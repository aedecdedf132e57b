package ingredient

import (
	"context"
	"fmt"
	"fridge-manager/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type (
	// IngredientRepository stores the inventory of each session. Records come
	// back in insertion order.
	IngredientRepository interface {
		GetIngredients(ctx context.Context, sessionID uuid.UUID) ([]*entities.Ingredient, error)
		AddIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		UpdateExpiryDate(ctx context.Context, sessionID uuid.UUID, id int, expiryDate time.Time) error
		DeleteIngredient(ctx context.Context, sessionID uuid.UUID, id int) error
		DeleteSession(ctx context.Context, sessionID uuid.UUID) error
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

// NewIngredientRepository returns the postgres-backed repository. Ids only
// grow, so ordering by id gives insertion order.
func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetIngredients(ctx context.Context, sessionID uuid.UUID) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id asc").
		Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("get ingredients: %w", err)
	}
	return ingredients, nil
}

func (r *ingredientRepository) AddIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	if err := r.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		return fmt.Errorf("add ingredient: %w", err)
	}
	return nil
}

func (r *ingredientRepository) UpdateExpiryDate(ctx context.Context, sessionID uuid.UUID, id int, expiryDate time.Time) error {
	if err := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("session_id = ? AND id = ?", sessionID, id).
		Update("expiry_date", expiryDate).Error; err != nil {
		return fmt.Errorf("update expiry date: %w", err)
	}
	return nil
}

func (r *ingredientRepository) DeleteIngredient(ctx context.Context, sessionID uuid.UUID, id int) error {
	if err := r.db.WithContext(ctx).
		Where("session_id = ? AND id = ?", sessionID, id).
		Delete(&entities.Ingredient{}).Error; err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	return nil
}

func (r *ingredientRepository) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&entities.Ingredient{}).Error; err != nil {
		return fmt.Errorf("delete session ingredients: %w", err)
	}
	return nil
}
