// Package broadcast fans out reload requests to other instances over Redis
// pub/sub so every replica refreshes its snapshot after /reload-data.
package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/logger"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/metrics"
)

// Message is the payload published on the reload channel.
type Message struct {
	Origin string    `json:"origin"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}

// Config configures a Notifier.
type Config struct {
	URL     string // redis://[:password@]host:port/db
	Channel string
	Origin  string // this instance's ID; own messages are ignored
	Logger  *logger.Logger
	Metrics *metrics.Metrics
}

// Notifier publishes and receives reload messages.
type Notifier struct {
	client  *redis.Client
	channel string
	origin  string
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, cfg Config) (*Notifier, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("broadcast: parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("broadcast: ping redis: %w", err)
	}
	return NewWithClient(client, cfg), nil
}

// NewWithClient builds a Notifier around an existing client.
func NewWithClient(client *redis.Client, cfg Config) *Notifier {
	if cfg.Logger == nil {
		cfg.Logger = logger.New("info")
	}
	return &Notifier{
		client:  client,
		channel: cfg.Channel,
		origin:  cfg.Origin,
		logger:  cfg.Logger.WithModule("broadcast"),
		metrics: cfg.Metrics,
	}
}

// Publish announces a reload to the other instances.
func (n *Notifier) Publish(ctx context.Context, reason string) error {
	data, err := json.Marshal(Message{Origin: n.origin, Reason: reason, At: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("broadcast: encode message: %w", err)
	}
	if err := n.client.Publish(ctx, n.channel, data).Err(); err != nil {
		n.record("sent", "error")
		return fmt.Errorf("broadcast: publish: %w", err)
	}
	n.record("sent", "success")
	return nil
}

// Listen subscribes to the channel and calls fn for every message from
// another origin until ctx is done. It returns nil on cancellation.
func (n *Notifier) Listen(ctx context.Context, fn func(context.Context, Message)) error {
	sub := n.client.Subscribe(ctx, n.channel)
	defer func() { _ = sub.Close() }()

	// Wait for the subscription to be confirmed before reporting readiness.
	if _, err := sub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("broadcast: subscribe %q: %w", n.channel, err)
	}
	n.logger.Info("Listening for reload broadcasts", "channel", n.channel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return errors.New("broadcast: subscription closed")
			}
			n.handle(ctx, msg.Payload, fn)
		}
	}
}

// handle decodes payload and dispatches it unless it came from this instance.
func (n *Notifier) handle(ctx context.Context, payload string, fn func(context.Context, Message)) {
	var m Message
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		n.record("received", "invalid")
		n.logger.WithError(err).Warn("Ignoring malformed reload broadcast")
		return
	}
	if m.Origin == n.origin {
		return
	}
	n.record("received", "success")
	n.logger.Info("Reload broadcast received", "origin", m.Origin, "reason", m.Reason)
	fn(ctx, m)
}

func (n *Notifier) record(direction, status string) {
	if n.metrics != nil {
		n.metrics.RecordBroadcast(direction, status)
	}
}

// Close closes the Redis client.
func (n *Notifier) Close() error {
	return n.client.Close()
}
