// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"placehub/config"
	"placehub/services/notification"
	"placehub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// MailWorker drains the Redis-backed mail queue and hands each task to the
// mailer. It runs inside the API process; asynq retries failed deliveries
// with its default backoff.
type MailWorker struct {
	server *asynq.Server
	mailer notification.Mailer
}

// NewMailWorker builds a worker bound to the mail queue database.
func NewMailWorker(mailer notification.Mailer) *MailWorker {
	cfg := config.AppConfig
	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisMailQueueDB,
		},
		asynq.Config{
			Concurrency: 5,
		},
	)
	return &MailWorker{server: server, mailer: mailer}
}

// Start registers handlers and begins processing in the background.
func (w *MailWorker) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeEmailDeliver, w.handleEmailDeliver)

	if err := w.server.Start(mux); err != nil {
		return fmt.Errorf("failed to start mail worker: %w", err)
	}
	utils.GetLogger().Info("mail worker started")
	return nil
}

// Shutdown waits for in-flight deliveries to finish.
func (w *MailWorker) Shutdown() {
	w.server.Shutdown()
}

func (w *MailWorker) handleEmailDeliver(ctx context.Context, t *asynq.Task) error {
	var payload notification.EmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// A malformed payload will never deliver; drop it instead of retrying.
		utils.GetLogger().Error("dropping malformed email task", zap.Error(err))
		return nil
	}

	if err := w.mailer.Send(payload.To, payload.Subject, payload.Body); err != nil {
		utils.GetLogger().Warn("email delivery failed, will retry",
			zap.String("to", payload.To), zap.String("subject", payload.Subject), zap.Error(err))
		return err
	}
	utils.GetLogger().Info("email delivered",
		zap.String("to", payload.To), zap.String("subject", payload.Subject))
	return nil
}
