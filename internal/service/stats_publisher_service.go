package service

import (
	"encoding/json"

	"hotel-chatbot-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Publisher is the single capability the chat flow needs from the event
// bus; the websocket layer (or any other transport) subscribes on the other
// side.
type Publisher interface {
	Publish(topic string, messages ...*message.Message) error
}

type IStatsPublisherService interface {
	PublishStats(stats *dto.ChatStats) error
}

type statsPublisherService struct {
	topicName string
	publisher Publisher
}

func NewStatsPublisherService(topicName string, publisher Publisher) IStatsPublisherService {
	return &statsPublisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (s *statsPublisherService) PublishStats(stats *dto.ChatStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return s.publisher.Publish(s.topicName, msg)
}
