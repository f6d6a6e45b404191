package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"placehub/models"

	"github.com/hibiken/asynq"
)

// Task types handled by the mail worker.
const (
	TypeEmailDeliver = "email:deliver"
)

// EmailPayload is the body of an email:deliver task.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// AsynqNotifier enqueues notification emails onto the Redis-backed mail
// queue. Delivery happens in the background worker; enqueueing is the only
// failure mode the calling service ever sees.
type AsynqNotifier struct {
	client *asynq.Client
}

// NewAsynqNotifier wraps an asynq client.
func NewAsynqNotifier(client *asynq.Client) *AsynqNotifier {
	return &AsynqNotifier{client: client}
}

func (n *AsynqNotifier) enqueue(ctx context.Context, payload EmailPayload, opts ...asynq.Option) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}
	if _, err := n.client.EnqueueContext(ctx, asynq.NewTask(TypeEmailDeliver, data), opts...); err != nil {
		return fmt.Errorf("failed to enqueue email for %s: %w", payload.To, err)
	}
	return nil
}

// SendInterviewScheduled enqueues the booking confirmation and a reminder
// scheduled for 24 hours before the interview day.
func (n *AsynqNotifier) SendInterviewScheduled(ctx context.Context, iv models.Interview) error {
	day := iv.SelectDate.Format("2006-01-02")
	confirmation := EmailPayload{
		To:      iv.Email,
		Subject: "Your mock interview is booked",
		Body: fmt.Sprintf("Hi %s,\n\nYour %s interview is confirmed for %s at %s.\n\nSee you there!",
			iv.Name, iv.YourField, day, iv.SelectTime),
	}
	if err := n.enqueue(ctx, confirmation); err != nil {
		return err
	}

	remindAt := iv.SelectDate.Add(-24 * time.Hour)
	if remindAt.Before(time.Now()) {
		return nil
	}
	reminder := EmailPayload{
		To:      iv.Email,
		Subject: "Interview reminder",
		Body: fmt.Sprintf("Hi %s,\n\nReminder: your %s interview is tomorrow, %s at %s.",
			iv.Name, iv.YourField, day, iv.SelectTime),
	}
	return n.enqueue(ctx, reminder, asynq.ProcessAt(remindAt))
}

// SendWorkshopRegistration enqueues the workshop registration confirmation.
func (n *AsynqNotifier) SendWorkshopRegistration(ctx context.Context, w models.Workshop, p models.Participant) error {
	payload := EmailPayload{
		To:      p.Email,
		Subject: fmt.Sprintf("Registered: %s", w.WorkshopName),
		Body: fmt.Sprintf("Hi %s,\n\nYou are registered for %s on %s.\nMeeting link: %s",
			p.FullName, w.WorkshopName, w.DateTime.Format("Mon, Jan 2 15:04"), w.MeetingLink),
	}
	return n.enqueue(ctx, payload)
}
