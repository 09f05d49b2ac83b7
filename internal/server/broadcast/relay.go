// Package broadcast implements the fire-and-forget relay used to hint other
// devices that something new exists. The channel carries no ciphertext and
// no delivery guarantee: clients that miss a hint simply poll the canonical
// store. Publish failures are therefore swallowed and only logged.
package broadcast

import (
	"context"
	"time"

	"github.com/snipvault/snipvault/internal/common"
	"github.com/snipvault/snipvault/internal/logging"
)

// Publisher is the pub/sub collaborator: an asynchronous publish primitive
// over a named channel, no acknowledgement required.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// Relay wraps a Publisher with the degraded-delivery contract: bounded
// publish time, errors never propagated to the caller.
type Relay struct {
	pub     Publisher
	logger  logging.Logger
	timeout time.Duration
}

// NewRelay constructs a Relay. The timeout caps the worst-case latency a
// Publish call can add to the calling flow; keep it sub-second.
func NewRelay(pub Publisher, logger logging.Logger, timeout time.Duration) *Relay {
	return &Relay{
		pub:     pub,
		logger:  logger.With("module", "broadcast"),
		timeout: timeout,
	}
}

// Publish sends a hint to the shared channel named after the event. It never
// returns an error and never blocks past the configured timeout: a failed or
// slow publish is logged and dropped. Callers must not treat a returned
// Publish as proof of delivery.
func (r *Relay) Publish(ctx context.Context, event string, payload []byte) {
	channel := common.BroadcastChannelPrefix + event

	pubCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.pub.Publish(pubCtx, channel, payload); err != nil {
		r.logger.Warn(ctx, "broadcast publish failed", "channel", channel, "error", err.Error())
	}
}
