package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"hotel-chatbot-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func waitForClientCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if hub.ClientCount() == want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("client count never reached %d (got %d)", want, hub.ClientCount())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestBroadcastStatsDeliversToClients(t *testing.T) {
	hub := NewHub(noopLogger{})
	go hub.Run()

	client := &Client{Hub: hub, Send: make(chan []byte, 4)}
	hub.register <- client
	waitForClientCount(t, hub, 1)

	stats := &dto.ChatStats{TotalSessions: 2, TotalMessages: 5}
	hub.BroadcastStats(stats)

	select {
	case payload := <-client.Send:
		var envelope struct {
			Type string        `json:"type"`
			Data dto.ChatStats `json:"data"`
		}
		require.NoError(t, json.Unmarshal(payload, &envelope))
		assert.Equal(t, "statsUpdate", envelope.Type)
		assert.Equal(t, int64(2), envelope.Data.TotalSessions)
		assert.Equal(t, int64(5), envelope.Data.TotalMessages)
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
	}
}

func TestNewClientReceivesLastSnapshot(t *testing.T) {
	hub := NewHub(noopLogger{})
	go hub.Run()

	hub.BroadcastStats(&dto.ChatStats{TotalSessions: 7})

	client := &Client{Hub: hub, Send: make(chan []byte, 4)}
	hub.register <- client

	select {
	case payload := <-client.Send:
		var envelope struct {
			Data dto.ChatStats `json:"data"`
		}
		require.NoError(t, json.Unmarshal(payload, &envelope))
		assert.Equal(t, int64(7), envelope.Data.TotalSessions)
	case <-time.After(time.Second):
		t.Fatal("snapshot was not replayed to the new client")
	}
}

func TestSlowClientIsDropped(t *testing.T) {
	hub := NewHub(noopLogger{})
	go hub.Run()

	// Unbuffered channel with no reader simulates a stalled dashboard.
	slow := &Client{Hub: hub, Send: make(chan []byte)}
	healthy := &Client{Hub: hub, Send: make(chan []byte, 4)}
	hub.register <- slow
	hub.register <- healthy
	waitForClientCount(t, hub, 2)

	hub.BroadcastStats(&dto.ChatStats{TotalSessions: 1})
	waitForClientCount(t, hub, 1)

	select {
	case <-healthy.Send:
	case <-time.After(time.Second):
		t.Fatal("healthy client did not receive the broadcast")
	}
}
