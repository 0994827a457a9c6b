package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/samratmajumder/oksaar-social-assistant/internal/database"
)

// Interaction feed event types.
const (
	EventInteractionCreated   = "interaction_created"
	EventInteractionResponded = "interaction_responded"
)

// InteractionEvent is the payload broadcast over Redis and WebSocket
// when an interaction is recorded or answered.
type InteractionEvent struct {
	Type          string    `json:"type"`
	UserID        string    `json:"user_id"`
	InteractionID string    `json:"interaction_id"`
	PostID        string    `json:"post_id"`
	Preview       string    `json:"preview,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// FeedConn is the minimal interface our WebSocket implementation must satisfy.
type FeedConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// feedHub is a registry of the dashboard connections, one per user.
type feedHub struct {
	mu          sync.RWMutex
	connections map[string]FeedConn
}

var (
	hub             = &feedHub{connections: make(map[string]FeedConn)}
	feedSubStarted  sync.Once
	feedChannelPref = "interactions:user:"
)

// RegisterFeedConnection registers or replaces a user's live feed
// connection. The previous connection, if any, is closed.
func RegisterFeedConnection(userID string, conn FeedConn) {
	hub.mu.Lock()
	if old, ok := hub.connections[userID]; ok {
		old.Close()
	}
	hub.connections[userID] = conn
	hub.mu.Unlock()
}

// UnregisterFeedConnection removes a user's connection if it is still
// the registered one.
func UnregisterFeedConnection(userID string, conn FeedConn) {
	hub.mu.Lock()
	if cur, ok := hub.connections[userID]; ok && cur == conn {
		delete(hub.connections, userID)
	}
	hub.mu.Unlock()
}

// fanOutEvent delivers an event to the owning user's local connection.
func fanOutEvent(event InteractionEvent) {
	hub.mu.RLock()
	conn, ok := hub.connections[event.UserID]
	hub.mu.RUnlock()
	if !ok {
		return
	}

	// Non-blocking best-effort send.
	go func(c FeedConn) {
		if err := c.WriteJSON(event); err != nil {
			log.Printf("error writing interaction event to websocket: %v", err)
		}
	}(conn)
}

// StartFeedSubscriber ensures a single shared Redis listener per instance.
func StartFeedSubscriber(ctx context.Context) {
	feedSubStarted.Do(func() {
		go runFeedSubscriber(ctx)
	})
}

func runFeedSubscriber(ctx context.Context) {
	client := database.RedisClient
	if client == nil {
		log.Println("Redis client not initialized; interaction feed subscriber not started")
		return
	}

	backoff := time.Second

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		func() {
			pubsub := client.PSubscribe(ctx, feedChannelPref+"*")
			defer pubsub.Close()

			log.Println("✅ Interaction feed subscriber started (pattern: interactions:user:*)")

			for {
				msg, err := pubsub.ReceiveMessage(ctx)
				if err != nil {
					log.Printf("Redis feed subscriber error: %v", err)
					time.Sleep(backoff)
					backoff *= 2
					if backoff > 30*time.Second {
						backoff = 30 * time.Second
					}
					return
				}

				backoff = time.Second

				var event InteractionEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Printf("failed to unmarshal interaction event: %v", err)
					continue
				}

				if event.UserID == "" {
					event.UserID = strings.TrimPrefix(msg.Channel, feedChannelPref)
				}

				fanOutEvent(event)
			}
		}()
	}
}

// PublishInteractionEvent publishes an event to the owning user's Redis
// channel. Best effort; a nil Redis client is a no-op so the CRUD path
// never depends on the feed.
func PublishInteractionEvent(ctx context.Context, event InteractionEvent) {
	if database.RedisClient == nil || event.UserID == "" {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	if err := database.RedisClient.Publish(ctx, feedChannelPref+event.UserID, data).Err(); err != nil {
		log.Printf("failed to publish interaction event: %v", err)
	}
}
