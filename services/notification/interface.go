package notification

import (
	"context"

	"placehub/models"
)

// Service defines the outbound notification side effects. Every method is
// best-effort from the caller's point of view: a failed notification is
// logged, never surfaced to the end user, and never rolls back the write
// that triggered it.
type Service interface {
	// SendInterviewScheduled emails a booking confirmation and queues a
	// reminder for the day before the interview.
	SendInterviewScheduled(ctx context.Context, iv models.Interview) error
	// SendWorkshopRegistration emails a registration confirmation to the
	// participant.
	SendWorkshopRegistration(ctx context.Context, w models.Workshop, p models.Participant) error
}
