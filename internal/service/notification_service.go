package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"idea-forge-be/internal/model"
	"idea-forge-be/internal/pkg/logger"
	"idea-forge-be/internal/repository"
	"idea-forge-be/pkg/events"
	pktNats "idea-forge-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// The NATS subject includes the stream prefix.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	s.logger.Info("NotificationService", "Processing event", map[string]interface{}{"type": typeCode})

	title, msgText, ok := describeEvent(typeCode, event.Payload())
	if !ok {
		// Events without a user-facing rendering are fine; ack silently.
		return nil
	}

	userID, ok := payloadUserID(event.Payload())
	if !ok {
		s.logger.Warn("NotificationService", "Event has no user_id, dropping", map[string]interface{}{"type": typeCode})
		return nil
	}

	metaJSON, _ := json.Marshal(event.Payload())
	notif := model.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		TypeCode:  typeCode,
		Title:     title,
		Message:   msgText,
		Metadata:  datatypes.JSON(metaJSON),
		CreatedAt: time.Now(),
		IsRead:    false,
	}

	if err := s.repo.CreateNotification(ctx, &notif); err != nil {
		s.logger.Error("NotificationService", "Error saving notification", map[string]interface{}{"error": err, "user_id": userID})
		return err // NATS will retry
	}

	if s.delivery != nil {
		s.delivery.Send(userID, notif)
	}

	return nil
}

// describeEvent maps an event type to a user-facing title and message.
func describeEvent(typeCode string, payload map[string]interface{}) (string, string, bool) {
	switch typeCode {
	case events.TypeStagePropagated:
		source := stageName(payload["source_stage"])
		affected := affectedStageNames(payload["affected_stages"])
		return "Plan updated",
			fmt.Sprintf("Your edit in %s also updated: %s", source, strings.Join(affected, ", ")),
			true
	case events.TypeStageCompleted:
		return "Stage completed",
			fmt.Sprintf("%s is complete. The next stage is unlocked.", stageName(payload["stage"])),
			true
	default:
		return "", "", false
	}
}

func stageName(v interface{}) string {
	// JSON round-trips numbers as float64.
	switch n := v.(type) {
	case float64:
		return stageDisplay(int(n))
	case int:
		return stageDisplay(n)
	}
	return "a stage"
}

func stageDisplay(n int) string {
	switch n {
	case 1:
		return "Ideation"
	case 2:
		return "Action Plan"
	case 3:
		return "Architecture"
	}
	return "a stage"
}

func affectedStageNames(v interface{}) []string {
	var names []string
	if list, ok := v.([]interface{}); ok {
		for _, item := range list {
			names = append(names, stageName(item))
		}
	}
	if len(names) == 0 {
		names = append(names, "other stages")
	}
	return names
}

func payloadUserID(payload map[string]interface{}) (uuid.UUID, bool) {
	if uidStr, ok := payload["user_id"].(string); ok {
		if uid, err := uuid.Parse(uidStr); err == nil {
			return uid, true
		}
	}
	return uuid.Nil, false
}

// GetNotifications fetches notifications for a user.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
}

// GetUnreadCount fetches unread count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

// MarkAsRead marks a notification as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks all notifications as read for a user.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
