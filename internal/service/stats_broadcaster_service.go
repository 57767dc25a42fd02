package service

import (
	"context"
	"encoding/json"

	"hotel-chatbot-be/internal/dto"
	"hotel-chatbot-be/internal/pkg/logger"
	"hotel-chatbot-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IStatsBroadcasterService interface {
	Broadcast(ctx context.Context) error
}

// statsBroadcasterService bridges the event bus and the websocket hub:
// every stats snapshot published by the chat flow is fanned out to the
// connected admin dashboards.
type statsBroadcasterService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	hub       *websocket.Hub
	logger    logger.ILogger
}

func NewStatsBroadcasterService(
	pubSub *gochannel.GoChannel,
	topicName string,
	hub *websocket.Hub,
	log logger.ILogger,
) IStatsBroadcasterService {
	return &statsBroadcasterService{
		pubSub:    pubSub,
		topicName: topicName,
		hub:       hub,
		logger:    log,
	}
}

func (s *statsBroadcasterService) Broadcast(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *statsBroadcasterService) processMessage(msg *message.Message) {
	var stats dto.ChatStats
	if err := json.Unmarshal(msg.Payload, &stats); err != nil {
		s.logger.Error("StatsBroadcaster", "Failed to unmarshal stats payload", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent redelivery
		return
	}

	s.hub.BroadcastStats(&stats)
	msg.Ack()
}
