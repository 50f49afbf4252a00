// Package notify delivers committed inbox notifications to live subscribers.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"teampro-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	channelPrefix = "notifications:"
	recentPrefix  = "notifications:recent:"
	recentLimit   = 50
	recentTTL     = 7 * 24 * time.Hour
)

// Message is the payload published for each notification
type Message struct {
	ID        uuid.UUID               `json:"id"`
	StudentID uuid.UUID               `json:"student_id"`
	Message   string                  `json:"message"`
	Type      models.NotificationType `json:"type"`
	CreatedAt time.Time               `json:"created_at"`
}

// RedisPublisher publishes notifications on a per-student channel and keeps a short recent list
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates a publisher on an existing client
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// Connect parses a redis URL, pings the server and returns a publisher
func Connect(ctx context.Context, url string) (*RedisPublisher, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return NewRedisPublisher(client), nil
}

// Channel returns the pub/sub channel of a student
func Channel(studentID uuid.UUID) string {
	return channelPrefix + studentID.String()
}

// RecentKey returns the list key holding a student's latest payloads
func RecentKey(studentID uuid.UUID) string {
	return recentPrefix + studentID.String()
}

// Publish sends all notifications in one pipeline
func (p *RedisPublisher) Publish(ctx context.Context, notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	pipe := p.client.Pipeline()
	for _, n := range notifications {
		payload, err := json.Marshal(Message{
			ID:        n.ID,
			StudentID: n.StudentID,
			Message:   n.Message,
			Type:      n.Type,
			CreatedAt: n.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("failed to encode notification: %w", err)
		}
		key := RecentKey(n.StudentID)
		pipe.Publish(ctx, Channel(n.StudentID), payload)
		pipe.LPush(ctx, key, payload)
		pipe.LTrim(ctx, key, 0, recentLimit-1)
		pipe.Expire(ctx, key, recentTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish notifications: %w", err)
	}
	return nil
}

// Ping checks that the server is reachable
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Close releases the underlying client
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
