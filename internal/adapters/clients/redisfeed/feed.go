// Package redisfeed implements the inbound board feed over Redis pub/sub.
// Each board publishes full retro documents on its own channel; a Feed
// subscribes, decodes them and reports the subscription lifecycle as the
// connect query.
package redisfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/retro-board/internal/adapters/clients/acl/retroapi"
	"github.com/jsamuelsen11/retro-board/internal/domain/query"
	"github.com/jsamuelsen11/retro-board/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.BoardFeed     = (*Feed)(nil)
	_ ports.HealthChecker = (*Feed)(nil)
)

// DefaultReconnectDelay is used when a Feed is created without one.
const DefaultReconnectDelay = time.Second

// Feed follows board channels on a Redis server.
type Feed struct {
	client         *redis.Client
	prefix         string
	reconnectDelay time.Duration
	logger         *slog.Logger
}

// New creates a Feed. Channels are named prefix + share id.
func New(client *redis.Client, prefix string, reconnectDelay time.Duration, logger *slog.Logger) *Feed {
	if reconnectDelay <= 0 {
		reconnectDelay = DefaultReconnectDelay
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Feed{
		client:         client,
		prefix:         prefix,
		reconnectDelay: reconnectDelay,
		logger:         logger,
	}
}

// Channel returns the pub/sub channel carrying shareID's board.
func (f *Feed) Channel(shareID string) string {
	return f.prefix + shareID
}

// Follow subscribes to shareID's channel and forwards every decoded board to
// h until ctx ends. The subscription is reported to h as pending while
// subscribing, success once confirmed, and failure when it drops; after a
// drop Follow waits the reconnect delay and subscribes again. It returns
// ctx's error.
func (f *Feed) Follow(ctx context.Context, shareID string, h ports.FeedHandler) error {
	channel := f.Channel(shareID)
	logger := f.logger.With(slog.String("channel", channel))

	for {
		err := f.followOnce(ctx, channel, h, logger)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		logger.WarnContext(ctx, "board feed dropped",
			slog.Duration("retry_in", f.reconnectDelay),
			slog.Any("error", err),
		)
		h.ConnectionChanged(ctx, query.Failure(err.Error()))

		timer := time.NewTimer(f.reconnectDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (f *Feed) followOnce(ctx context.Context, channel string, h ports.FeedHandler, logger *slog.Logger) error {
	h.ConnectionChanged(ctx, query.Pending())

	sub := f.client.Subscribe(ctx, channel)

	// A blocked pub/sub read ignores ctx, so cancellation closes the
	// subscription to unblock it.
	stop := context.AfterFunc(ctx, func() { _ = sub.Close() })
	defer func() {
		if !stop() {
			return
		}
		if err := sub.Close(); err != nil {
			logger.DebugContext(ctx, "closing subscription", slog.Any("error", err))
		}
	}()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribing to %s: %w", channel, err)
	}
	logger.InfoContext(ctx, "board feed subscribed")
	h.ConnectionChanged(ctx, query.Success())

	for {
		msg, err := sub.ReceiveMessage(ctx)
		if err != nil {
			return fmt.Errorf("receiving on %s: %w", channel, err)
		}

		var dto retroapi.RetroDTO
		if err := json.Unmarshal([]byte(msg.Payload), &dto); err != nil {
			logger.WarnContext(ctx, "discarding malformed board payload",
				slog.Int("bytes", len(msg.Payload)),
				slog.Any("error", err),
			)
			continue
		}
		h.BoardUpdated(ctx, retroapi.ToDomainRetro(&dto))
	}
}

// Name identifies the feed in the readiness report.
func (f *Feed) Name() string {
	return "redis"
}

// HealthCheck pings the Redis server.
func (f *Feed) HealthCheck(ctx context.Context) error {
	if err := f.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}
