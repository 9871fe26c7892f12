package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	db "github.com/uicmedicare/medicare-BE/internal/db/sqlc"
	"github.com/uicmedicare/medicare-BE/internal/event"
	"github.com/uicmedicare/medicare-BE/internal/util"
)

// PayloadLowStockAlert describes a medicine that dropped to or below its
// low-stock threshold at a branch.
type PayloadLowStockAlert struct {
	BranchID       int64
	MedicineID     int64
	MedicineName   string
	QuantityOnHand int32
	Threshold      int32
	Unit           string
	NotifyEmail    string
}

func (distributor *RedisTaskDistributor) DistributeTaskLowStockAlert(
	ctx context.Context,
	payload *PayloadLowStockAlert,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskLowStockAlert, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskLowStockAlert(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadLowStockAlert
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	// The three message segments (title / detail / date) are rendered
	// separately by the notification panel.
	message := fmt.Sprintf("Low stock alert\n%s: %d %s left (threshold %d)\n%s",
		payload.MedicineName, payload.QuantityOnHand, payload.Unit, payload.Threshold,
		time.Now().Format("1/2/2006"))

	notification, err := processor.store.CreateNotification(ctx, db.CreateNotificationParams{
		BranchID:    payload.BranchID,
		Type:        db.NotificationTypeLowStock,
		Title:       util.StringPointer("Low stock alert"),
		Message:     message,
		ReferenceID: util.Int64Pointer(payload.MedicineID),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create low-stock notification")
		return err
	}

	processor.eventSender.Broadcast(event.Event{
		Topic: event.BranchTopic(payload.BranchID),
		Type:  event.EventTypeLowStockAlert,
		Data:  notification,
	})

	if payload.NotifyEmail != "" {
		if err = processor.mailService.SendLowStockAlert(payload.NotifyEmail, payload.MedicineName, payload.QuantityOnHand, payload.Threshold, payload.Unit); err != nil {
			// Email delivery is best effort; the notification row is already
			// persisted.
			log.Warn().Err(err).Str("email", payload.NotifyEmail).Msg("failed to send low-stock email")
		}
	}

	log.Info().Str("type", task.Type()).Int64("branch_id", payload.BranchID).
		Int64("medicine_id", payload.MedicineID).Msg("task processed")

	return nil
}
