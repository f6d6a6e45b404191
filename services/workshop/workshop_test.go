package workshop

import (
	"context"
	"errors"
	"testing"
	"time"

	"placehub/models"

	"go.uber.org/zap"
)

type mockWorkshopRepo struct {
	GetByIDFn           func(ctx context.Context, id string) (*models.Workshop, error)
	FindByLinkFn        func(ctx context.Context, link string) (*models.Workshop, error)
	AddParticipantFn    func(ctx context.Context, workshopID string, p models.Participant) error
	UpdateParticipantFn func(ctx context.Context, workshopID string, p models.Participant) error
	RemoveParticipantFn func(ctx context.Context, workshopID, participantID string) error
}

func (m *mockWorkshopRepo) Create(ctx context.Context, w *models.Workshop) error { return nil }
func (m *mockWorkshopRepo) GetByID(ctx context.Context, id string) (*models.Workshop, error) {
	return m.GetByIDFn(ctx, id)
}
func (m *mockWorkshopRepo) FindByLink(ctx context.Context, link string) (*models.Workshop, error) {
	return m.FindByLinkFn(ctx, link)
}
func (m *mockWorkshopRepo) GetAll(ctx context.Context) ([]models.Workshop, error) { return nil, nil }
func (m *mockWorkshopRepo) Update(ctx context.Context, w *models.Workshop) error  { return nil }
func (m *mockWorkshopRepo) Delete(ctx context.Context, id string) error           { return nil }
func (m *mockWorkshopRepo) AddParticipant(ctx context.Context, workshopID string, p models.Participant) error {
	return m.AddParticipantFn(ctx, workshopID, p)
}
func (m *mockWorkshopRepo) UpdateParticipant(ctx context.Context, workshopID string, p models.Participant) error {
	return m.UpdateParticipantFn(ctx, workshopID, p)
}
func (m *mockWorkshopRepo) RemoveParticipant(ctx context.Context, workshopID, participantID string) error {
	return m.RemoveParticipantFn(ctx, workshopID, participantID)
}

type fakePayments struct {
	lastAmount int64
	secret     string
	err        error
}

func (f *fakePayments) CreatePaymentIntent(ctx context.Context, amount int64, currency, description string) (string, error) {
	f.lastAmount = amount
	return f.secret, f.err
}

func testWorkshop() *models.Workshop {
	return &models.Workshop{
		ID:           "w-1",
		WorkshopName: "Resume Clinic",
		DateTime:     time.Now().Add(72 * time.Hour),
		Participants: []models.Participant{
			{ID: "p-1", Email: "taken@example.com"},
		},
	}
}

func registrationRequest() models.RegistrationRequest {
	return models.RegistrationRequest{
		WorkshopID: "w-1",
		FullName:   "Ravi",
		Email:      "ravi@example.com",
		Whatsapp:   "+15559876543",
		Payment:    49,
	}
}

func newTestService(repo *mockWorkshopRepo, payments PaymentProvider) *DefaultWorkshopService {
	return &DefaultWorkshopService{Repo: repo, Payments: payments, Logger: zap.NewNop()}
}

func TestRegisterParticipant(t *testing.T) {
	var added *models.Participant
	repo := &mockWorkshopRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.Workshop, error) {
			return testWorkshop(), nil
		},
		AddParticipantFn: func(ctx context.Context, workshopID string, p models.Participant) error {
			added = &p
			return nil
		},
	}
	payments := &fakePayments{secret: "pi_secret_123"}
	svc := newTestService(repo, payments)

	resp, err := svc.RegisterParticipant(context.Background(), registrationRequest())
	if err != nil {
		t.Fatalf("RegisterParticipant: %v", err)
	}
	if added == nil || added.Email != "ravi@example.com" {
		t.Fatalf("participant not stored: %+v", added)
	}
	if added.Confirmed {
		t.Error("new participant should start unconfirmed")
	}
	if resp.ClientSecret != "pi_secret_123" {
		t.Errorf("ClientSecret = %q", resp.ClientSecret)
	}
	// 49 dollars charged in cents.
	if payments.lastAmount != 4900 {
		t.Errorf("charged amount = %d, want 4900", payments.lastAmount)
	}
}

func TestRegisterParticipantInvalidPlan(t *testing.T) {
	svc := newTestService(&mockWorkshopRepo{}, nil)

	req := registrationRequest()
	req.Payment = 25
	_, err := svc.RegisterParticipant(context.Background(), req)
	if !errors.Is(err, ErrInvalidPlan) {
		t.Errorf("err = %v, want ErrInvalidPlan", err)
	}
}

func TestRegisterParticipantDuplicateEmail(t *testing.T) {
	repo := &mockWorkshopRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.Workshop, error) {
			return testWorkshop(), nil
		},
	}
	svc := newTestService(repo, nil)

	req := registrationRequest()
	req.Email = "TAKEN@example.com"
	_, err := svc.RegisterParticipant(context.Background(), req)
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("err = %v, want ErrAlreadyRegistered", err)
	}
}

func TestRegisterParticipantPaymentFailureKeepsRegistration(t *testing.T) {
	repo := &mockWorkshopRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.Workshop, error) {
			return testWorkshop(), nil
		},
		AddParticipantFn: func(ctx context.Context, workshopID string, p models.Participant) error {
			return nil
		},
	}
	svc := newTestService(repo, &fakePayments{err: errors.New("stripe down")})

	resp, err := svc.RegisterParticipant(context.Background(), registrationRequest())
	if err != nil {
		t.Fatalf("RegisterParticipant: %v", err)
	}
	if resp.ClientSecret != "" {
		t.Errorf("ClientSecret = %q, want empty on payment failure", resp.ClientSecret)
	}
}

func TestConfirmRegistration(t *testing.T) {
	var confirmed *models.Participant
	repo := &mockWorkshopRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.Workshop, error) {
			return testWorkshop(), nil
		},
		UpdateParticipantFn: func(ctx context.Context, workshopID string, p models.Participant) error {
			confirmed = &p
			return nil
		},
	}
	svc := newTestService(repo, nil)

	p, err := svc.ConfirmRegistration(context.Background(), "w-1", "p-1")
	if err != nil {
		t.Fatalf("ConfirmRegistration: %v", err)
	}
	if !p.Confirmed || confirmed == nil || !confirmed.Confirmed {
		t.Error("participant not marked confirmed")
	}
}

func TestConfirmRegistrationUnknownParticipant(t *testing.T) {
	repo := &mockWorkshopRepo{
		GetByIDFn: func(ctx context.Context, id string) (*models.Workshop, error) {
			return testWorkshop(), nil
		},
	}
	svc := newTestService(repo, nil)

	if _, err := svc.ConfirmRegistration(context.Background(), "w-1", "nope"); !errors.Is(err, ErrParticipantNotFound) {
		t.Errorf("err = %v, want ErrParticipantNotFound", err)
	}
}
