package notify_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"teampro-backend/internal/database/models"
	"teampro-backend/internal/notify"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotification(studentID uuid.UUID, message string) models.Notification {
	n := models.Notification{
		StudentID: studentID,
		Message:   message,
		Type:      models.NotificationInfo,
	}
	n.ID = uuid.New()
	n.CreatedAt = time.Now()
	return n
}

func TestRedisPublisher(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	publisher := notify.NewRedisPublisher(rdb)
	defer func() { _ = publisher.Close() }()
	ctx := context.Background()

	t.Run("PublishesOnStudentChannel", func(t *testing.T) {
		student := uuid.New()
		sub := rdb.Subscribe(ctx, notify.Channel(student))
		defer func() { _ = sub.Close() }()
		_, err := sub.Receive(ctx)
		require.NoError(t, err)

		n := newNotification(student, "Your team request was accepted")
		require.NoError(t, publisher.Publish(ctx, []models.Notification{n}))

		select {
		case msg := <-sub.Channel():
			var got notify.Message
			require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
			assert.Equal(t, n.ID, got.ID)
			assert.Equal(t, student, got.StudentID)
			assert.Equal(t, "Your team request was accepted", got.Message)
			assert.Equal(t, models.NotificationInfo, got.Type)
		case <-time.After(2 * time.Second):
			t.Fatal("no message received")
		}
	})

	t.Run("KeepsBoundedRecentList", func(t *testing.T) {
		student := uuid.New()
		batch := make([]models.Notification, 0, 60)
		for i := 0; i < 60; i++ {
			batch = append(batch, newNotification(student, "update"))
		}
		require.NoError(t, publisher.Publish(ctx, batch))

		items, err := mr.List(notify.RecentKey(student))
		require.NoError(t, err)
		assert.Len(t, items, 50)
		assert.True(t, mr.TTL(notify.RecentKey(student)) > 0)

		var newest notify.Message
		require.NoError(t, json.Unmarshal([]byte(items[0]), &newest))
		assert.Equal(t, batch[59].ID, newest.ID)
	})

	t.Run("EmptyBatchIsNoop", func(t *testing.T) {
		assert.NoError(t, publisher.Publish(ctx, nil))
	})

	t.Run("FailsWhenServerIsDown", func(t *testing.T) {
		down := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: down.Addr(), MaxRetries: -1})
		p := notify.NewRedisPublisher(client)
		defer func() { _ = p.Close() }()
		down.Close()

		err := p.Publish(ctx, []models.Notification{newNotification(uuid.New(), "x")})
		assert.Error(t, err)
	})
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	p, err := notify.Connect(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	assert.NoError(t, p.Ping(context.Background()))
	assert.NoError(t, p.Close())

	_, err = notify.Connect(context.Background(), "not a url")
	assert.Error(t, err)
}
