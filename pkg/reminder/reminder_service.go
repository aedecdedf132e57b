// Package reminder mails a session's soon-to-expire ingredients.
package reminder

import (
	"bytes"
	"context"
	"fmt"
	"fridge-manager/domain"
	"fridge-manager/internal/utils/mailing"
	"fridge-manager/pkg/ingredient"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"html/template"
)

// DefaultWindowDays matches the "warning" window used for the dashboard.
const DefaultWindowDays = 3

const reminderSubject = "Fridge Manager: ingredients expiring soon"

var reminderBody = template.Must(template.New("reminder").Parse(`<h2>Use these soon</h2>
<p>The following ingredients expire within {{.Days}} day(s):</p>
<ul>
{{range .Items}}<li><strong>{{.Name}}</strong> ({{.Quantity}}) &middot; expires {{.ExpiryDate}}</li>
{{end}}</ul>`))

type (
	ReminderService interface {
		SendExpiryReminder(ctx context.Context, sessionID uuid.UUID, req domain.ExpiryReminderRequest) (domain.ExpiryReminderResponse, error)
	}

	reminderService struct {
		ingredientService ingredient.IngredientService
		mailer            mailing.Mailer
	}
)

func NewReminderService(ingredientService ingredient.IngredientService, mailer mailing.Mailer) ReminderService {
	return &reminderService{
		ingredientService: ingredientService,
		mailer:            mailer,
	}
}

func (s *reminderService) SendExpiryReminder(ctx context.Context, sessionID uuid.UUID, req domain.ExpiryReminderRequest) (domain.ExpiryReminderResponse, error) {
	if !s.mailer.Configured() {
		return domain.ExpiryReminderResponse{}, domain.ErrMailNotConfigured
	}

	days := req.Days
	if days <= 0 {
		days = DefaultWindowDays
	}

	items, err := s.ingredientService.GetExpiringIngredients(ctx, sessionID, days)
	if err != nil {
		return domain.ExpiryReminderResponse{}, err
	}
	if len(items) == 0 {
		return domain.ExpiryReminderResponse{}, domain.ErrNothingToRemind
	}

	var body bytes.Buffer
	if err := reminderBody.Execute(&body, domain.ExpiryReminderResponse{Days: days, Items: items}); err != nil {
		return domain.ExpiryReminderResponse{}, err
	}

	if err := s.mailer.SendMail(req.Email, reminderSubject, body.String()); err != nil {
		log.Errorf("session %s: reminder to %s failed: %v", sessionID, req.Email, err)
		return domain.ExpiryReminderResponse{}, fmt.Errorf("%w: %v", domain.ErrSendMailFailed, err)
	}

	return domain.ExpiryReminderResponse{
		Email: req.Email,
		Days:  days,
		Items: items,
	}, nil
}
