package broadcast

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/snipvault/snipvault/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type recordingPublisher struct {
	channel string
	payload []byte
	err     error
}

func (p *recordingPublisher) Publish(ctx context.Context, channel string, payload []byte) error {
	p.channel = channel
	p.payload = payload
	return p.err
}

// blockingPublisher simulates an unreachable backend: it only returns once
// the publish context is cancelled.
type blockingPublisher struct{}

func (p *blockingPublisher) Publish(ctx context.Context, channel string, payload []byte) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestPublish_DeliversToNamedChannel(t *testing.T) {
	pub := &recordingPublisher{}
	relay := NewRelay(pub, nopLogger{}, 500*time.Millisecond)

	relay.Publish(context.Background(), "snippet:created", []byte(`{"id":"s1"}`))

	assert.Equal(t, "snipvault:snippet:created", pub.channel)
	assert.Equal(t, []byte(`{"id":"s1"}`), pub.payload)
}

func TestPublish_SwallowsPublisherError(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("connection refused")}
	relay := NewRelay(pub, nopLogger{}, 500*time.Millisecond)

	// Publish has no error return; the only failure mode visible to a
	// caller would be a panic.
	require.NotPanics(t, func() {
		relay.Publish(context.Background(), "snippet:created", nil)
	})
}

func TestPublish_ReturnsWithinTimeoutWhenBackendUnreachable(t *testing.T) {
	relay := NewRelay(&blockingPublisher{}, nopLogger{}, 100*time.Millisecond)

	start := time.Now()
	relay.Publish(context.Background(), "snippet:created", nil)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, time.Second, "publish must be bounded by the relay timeout")
}
