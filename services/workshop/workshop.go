// File: services/workshop/workshop.go
package workshop

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	workshopRepo "placehub/database/repository/workshop"
	"placehub/models"
	"placehub/services/notification"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrWorkshopNotFound is returned when no workshop matches the id or link.
	ErrWorkshopNotFound = errors.New("workshop not found")
	// ErrAlreadyRegistered is returned when the email is already on the
	// participant list.
	ErrAlreadyRegistered = errors.New("this email is already registered for the workshop")
	// ErrInvalidPlan is returned for a payment amount outside the offered plans.
	ErrInvalidPlan = errors.New("invalid payment plan")
	// ErrParticipantNotFound is returned when no participant matches the id.
	ErrParticipantNotFound = errors.New("participant not found")
)

// PaymentProvider creates payment intents for workshop registrations and
// returns the client secret the frontend completes the charge with.
type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency, description string) (string, error)
}

// WorkshopService defines workshop and registration management.
type WorkshopService interface {
	CreateWorkshop(ctx context.Context, w *models.Workshop) (*models.Workshop, error)
	GetWorkshop(ctx context.Context, id string) (*models.Workshop, error)
	GetWorkshopByLink(ctx context.Context, link string) (*models.Workshop, error)
	ListWorkshops(ctx context.Context) ([]models.Workshop, error)
	UpdateWorkshop(ctx context.Context, w *models.Workshop) (*models.Workshop, error)
	DeleteWorkshop(ctx context.Context, id string) error

	RegisterParticipant(ctx context.Context, req models.RegistrationRequest) (*models.RegistrationResponse, error)
	ConfirmRegistration(ctx context.Context, workshopID, participantID string) (*models.Participant, error)
	RemoveParticipant(ctx context.Context, workshopID, participantID string) error
}

// DefaultWorkshopService is the production implementation of WorkshopService.
type DefaultWorkshopService struct {
	Repo     workshopRepo.WorkshopRepository
	Payments PaymentProvider
	Notifier notification.Service
	Logger   *zap.Logger
}

// NewDefaultWorkshopService constructs a DefaultWorkshopService.
func NewDefaultWorkshopService(repo workshopRepo.WorkshopRepository, payments PaymentProvider, notifier notification.Service, logger *zap.Logger) *DefaultWorkshopService {
	return &DefaultWorkshopService{Repo: repo, Payments: payments, Notifier: notifier, Logger: logger}
}

// CreateWorkshop validates and stores a new workshop.
func (s *DefaultWorkshopService) CreateWorkshop(ctx context.Context, w *models.Workshop) (*models.Workshop, error) {
	if w.WorkshopName == "" {
		return nil, errors.New("workshop name is required")
	}
	if w.DateTime.IsZero() {
		return nil, errors.New("workshop date and time are required")
	}
	if w.Participants == nil {
		w.Participants = []models.Participant{}
	}
	if err := s.Repo.Create(ctx, w); err != nil {
		return nil, err
	}
	s.Logger.Info("workshop created",
		zap.String("workshopID", w.ID), zap.String("link", w.WorkshopLink))
	return w, nil
}

// GetWorkshop fetches one workshop by id.
func (s *DefaultWorkshopService) GetWorkshop(ctx context.Context, id string) (*models.Workshop, error) {
	w, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrWorkshopNotFound
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// GetWorkshopByLink fetches one workshop by its public link.
func (s *DefaultWorkshopService) GetWorkshopByLink(ctx context.Context, link string) (*models.Workshop, error) {
	w, err := s.Repo.FindByLink(ctx, link)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrWorkshopNotFound
	}
	return w, nil
}

// ListWorkshops returns all workshops.
func (s *DefaultWorkshopService) ListWorkshops(ctx context.Context) ([]models.Workshop, error) {
	workshops, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if workshops == nil {
		workshops = []models.Workshop{}
	}
	return workshops, nil
}

// UpdateWorkshop replaces a workshop's details, preserving the participant
// list and registration counter from the stored record.
func (s *DefaultWorkshopService) UpdateWorkshop(ctx context.Context, w *models.Workshop) (*models.Workshop, error) {
	current, err := s.GetWorkshop(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	w.Participants = current.Participants
	w.TotalRegistered = current.TotalRegistered
	w.WorkshopLink = current.WorkshopLink
	w.CreatedAt = current.CreatedAt

	if err := s.Repo.Update(ctx, w); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWorkshopNotFound
		}
		return nil, err
	}
	return w, nil
}

// DeleteWorkshop removes a workshop and its registrations.
func (s *DefaultWorkshopService) DeleteWorkshop(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrWorkshopNotFound
	}
	return err
}

func validPlan(amount int64) bool {
	for _, p := range models.WorkshopPlans {
		if p == amount {
			return true
		}
	}
	return false
}

// RegisterParticipant adds an attendee to a workshop and opens a payment
// intent for the chosen plan. The workshop is addressed by id or, failing
// that, by its public link. The participant is stored unconfirmed; the
// confirmation step runs once payment succeeds.
func (s *DefaultWorkshopService) RegisterParticipant(ctx context.Context, req models.RegistrationRequest) (*models.RegistrationResponse, error) {
	if req.FullName == "" || req.Email == "" || req.Whatsapp == "" {
		return nil, errors.New("full name, email and whatsapp number are required")
	}
	if !validPlan(req.Payment) {
		return nil, ErrInvalidPlan
	}

	var (
		w   *models.Workshop
		err error
	)
	if req.WorkshopID != "" {
		w, err = s.GetWorkshop(ctx, req.WorkshopID)
	} else {
		w, err = s.GetWorkshopByLink(ctx, req.WorkshopLink)
	}
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	for _, p := range w.Participants {
		if strings.EqualFold(p.Email, email) {
			return nil, ErrAlreadyRegistered
		}
	}

	participant := models.Participant{
		ID:        uuid.New().String(),
		FullName:  req.FullName,
		Email:     email,
		Whatsapp:  req.Whatsapp,
		Payment:   req.Payment,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.AddParticipant(ctx, w.ID, participant); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWorkshopNotFound
		}
		return nil, err
	}

	resp := &models.RegistrationResponse{WorkshopID: w.ID, Participant: participant}
	if s.Payments != nil {
		desc := fmt.Sprintf("Workshop registration: %s", w.WorkshopName)
		secret, err := s.Payments.CreatePaymentIntent(ctx, req.Payment*100, "usd", desc)
		if err != nil {
			// The registration stands; payment can be retried from the client.
			s.Logger.Error("failed to create payment intent",
				zap.String("workshopID", w.ID), zap.String("participantID", participant.ID), zap.Error(err))
		} else {
			resp.ClientSecret = secret
		}
	}

	if s.Notifier != nil {
		if err := s.Notifier.SendWorkshopRegistration(ctx, *w, participant); err != nil {
			s.Logger.Warn("failed to send registration confirmation",
				zap.String("workshopID", w.ID), zap.String("email", participant.Email), zap.Error(err))
		}
	}
	return resp, nil
}

// ConfirmRegistration marks a participant's payment as completed.
func (s *DefaultWorkshopService) ConfirmRegistration(ctx context.Context, workshopID, participantID string) (*models.Participant, error) {
	w, err := s.GetWorkshop(ctx, workshopID)
	if err != nil {
		return nil, err
	}
	for _, p := range w.Participants {
		if p.ID == participantID {
			p.Confirmed = true
			if err := s.Repo.UpdateParticipant(ctx, workshopID, p); err != nil {
				return nil, err
			}
			return &p, nil
		}
	}
	return nil, ErrParticipantNotFound
}

// RemoveParticipant drops an attendee from a workshop.
func (s *DefaultWorkshopService) RemoveParticipant(ctx context.Context, workshopID, participantID string) error {
	err := s.Repo.RemoveParticipant(ctx, workshopID, participantID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrParticipantNotFound
	}
	return err
}
