package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stashlop/sillora/internal/utils"
)

func testLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
}

func TestPublishRoundTrip(t *testing.T) {
	pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisher := &Publisher{publisher: pubsub, logger: testLogger()}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	messages, err := pubsub.Subscribe(ctx, TopicCourseEnrolled)
	require.NoError(t, err)

	event := CourseEnrolled{StudentID: 7, CourseID: 3, EnrolledAt: time.Now().UTC()}
	publisher.Publish(ctx, TopicCourseEnrolled, event)

	select {
	case msg := <-messages:
		var got CourseEnrolled
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, uint(7), got.StudentID)
		assert.Equal(t, uint(3), got.CourseID)
		msg.Ack()
	case <-ctx.Done():
		t.Fatal("timed out waiting for event")
	}

	require.NoError(t, publisher.Close())
}

func TestPublishOnNilPublisherIsNoOp(t *testing.T) {
	var publisher *Publisher
	assert.NotPanics(t, func() {
		publisher.Publish(context.Background(), TopicUserSignedUp, UserSignedUp{AccountID: 1})
	})
	assert.NoError(t, publisher.Close())
}

func TestPublishUnmarshalablePayloadLogsAndContinues(t *testing.T) {
	publisher := NewGoChannelPublisher(testLogger())
	defer publisher.Close()

	assert.NotPanics(t, func() {
		publisher.Publish(context.Background(), TopicUserSignedUp, make(chan int))
	})
}
