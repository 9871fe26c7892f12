package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	db "github.com/uicmedicare/medicare-BE/internal/db/sqlc"
	"github.com/uicmedicare/medicare-BE/internal/event"
	"github.com/uicmedicare/medicare-BE/internal/util"
)

// PayloadSendNotification contains all data of the task that we want to store in Redis.
type PayloadSendNotification struct {
	BranchID    int64
	Title       string
	Message     string
	Type        string
	RequestID   *int64
	ReferenceID *int64
}

func (distributor *RedisTaskDistributor) DistributeTaskSendNotification(
	ctx context.Context,
	payload *PayloadSendNotification,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskSendNotification, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskSendNotification(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadSendNotification
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	var title *string
	if payload.Title != "" {
		title = &payload.Title
	}

	notification, err := processor.store.CreateNotification(ctx, db.CreateNotificationParams{
		BranchID:    payload.BranchID,
		Type:        db.NotificationType(payload.Type),
		Title:       title,
		Message:     payload.Message,
		RequestID:   payload.RequestID,
		ReferenceID: payload.ReferenceID,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create notification")
		return err
	}

	// Push the update to clients watching the branch feed.
	processor.eventSender.Broadcast(event.Event{
		Topic: event.BranchTopic(payload.BranchID),
		Type:  event.EventTypeFeedUpdated,
		Data:  notification,
	})

	log.Info().Str("type", task.Type()).Int64("branch_id", payload.BranchID).
		Int64("notification_id", notification.ID).
		Str("message", util.TruncateContent(payload.Message, 80)).Msg("task processed")

	return nil
}
