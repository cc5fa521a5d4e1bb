package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/utpal5/Ticketingsystem/internal/events"
)

// NotificationService reacts to ticket events. Delivery is a logging
// stub; a real deployment would hand these to a mailer.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to ticket lifecycle events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handle)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handle)
	n.dispatcher.Subscribe(events.EventTicketAssigned, n.handle)
	n.dispatcher.Subscribe(events.EventCommentAdded, n.handle)
}

func (n *NotificationService) handle(ctx context.Context, event events.Event) error {
	n.logger.Info("ticket event",
		zap.String("event", string(event.Type)),
		zap.Int64("ticket_id", event.TicketID),
		zap.Int64("actor_id", event.Actor.UserID),
		zap.Any("payload", event.Payload))
	return nil
}
