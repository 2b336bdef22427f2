package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestPublishLikeEvent(t *testing.T) {
	w := &recordingWriter{}
	p := NewKafkaPublisherWithWriter(w)
	event := entity.LikeEvent{
		Type:       entity.LikeEventLiked,
		UserID:     "user-1",
		PostID:     "post-1",
		LikeCount:  3,
		OccurredAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, p.PublishLikeEvent(context.Background(), event))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "post-1", string(msg.Key))
	assert.Equal(t, "post.liked", string(msg.Headers[0].Value))

	var decoded entity.LikeEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestPublishLikeEvent_WriterError(t *testing.T) {
	p := NewKafkaPublisherWithWriter(&recordingWriter{err: errors.New("broker down")})

	err := p.PublishLikeEvent(context.Background(), entity.LikeEvent{Type: entity.LikeEventUnliked, PostID: "p"})
	assert.ErrorContains(t, err, "broker down")
}
