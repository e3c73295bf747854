// Package webhook serves the LINE Messaging API webhook. Events are
// acknowledged at once and answered asynchronously by the chat processor.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/bot"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/config"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/ctxutil"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/lineutil"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/logger"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/metrics"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/ratelimit"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/sentry"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/session"
)

// Greeting sent to users who add the bot as a friend.
const followText = "hello"

// ChatProcessor answers one chat message. *bot.Processor implements it.
type ChatProcessor interface {
	HandleMessage(ctx context.Context, text string) bot.ChatResponse
}

// Replier sends reply messages. *messaging_api.MessagingApiAPI implements it.
type Replier interface {
	ReplyMessage(req *messaging_api.ReplyMessageRequest) (*messaging_api.ReplyMessageResponse, error)
}

// HandlerConfig holds configuration for creating a new Handler.
// Client, Sessions, UserLimiter and Metrics are optional.
type HandlerConfig struct {
	ChannelSecret    string
	ChannelToken     string
	Client           Replier // created from ChannelToken when nil
	Processor        ChatProcessor
	Sessions         *session.Store
	UserLimiter      *ratelimit.KeyedLimiter
	ReplyRateRPS     float64
	MaxMessageLength int // in runes; longer messages are truncated
	Logger           *logger.Logger
	Metrics          *metrics.Metrics
}

// Handler handles LINE webhook events.
type Handler struct {
	channelSecret    string
	client           Replier
	processor        ChatProcessor
	sessions         *session.Store
	userLimiter      *ratelimit.KeyedLimiter
	replyLimiter     *ratelimit.Limiter
	maxMessageLength int
	logger           *logger.Logger
	metrics          *metrics.Metrics
	wg               sync.WaitGroup
}

// NewHandler creates a new webhook handler.
func NewHandler(cfg HandlerConfig) (*Handler, error) {
	if cfg.ChannelSecret == "" {
		return nil, errors.New("channel secret is required")
	}
	if cfg.Processor == nil {
		return nil, errors.New("processor is required")
	}
	if cfg.Client == nil {
		client, err := messaging_api.NewMessagingApiAPI(cfg.ChannelToken,
			messaging_api.WithHTTPClient(&http.Client{Timeout: config.WebhookReply}))
		if err != nil {
			return nil, fmt.Errorf("create messaging API client: %w", err)
		}
		cfg.Client = client
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.New("info")
	}
	rps := cfg.ReplyRateRPS
	if rps <= 0 {
		rps = 80
	}

	return &Handler{
		channelSecret:    cfg.ChannelSecret,
		client:           cfg.Client,
		processor:        cfg.Processor,
		sessions:         cfg.Sessions,
		userLimiter:      cfg.UserLimiter,
		replyLimiter:     ratelimit.New(rps, rps),
		maxMessageLength: cfg.MaxMessageLength,
		logger:           cfg.Logger.WithModule("webhook"),
		metrics:          cfg.Metrics,
	}, nil
}

// Handle is the Gin handler for the webhook endpoint.
func (h *Handler) Handle(c *gin.Context) {
	cb, err := webhook.ParseRequest(h.channelSecret, c.Request)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			h.logger.Warn("Invalid webhook signature")
			h.recordHTTPError("invalid_signature")
			c.Status(http.StatusBadRequest)
		} else {
			h.logger.WithError(err).Error("Failed to parse webhook request")
			h.recordHTTPError("parse_failed")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	// LINE expects the acknowledgement before any reply is sent.
	c.Status(http.StatusOK)

	start := time.Now()
	h.recordWebhook("batch", "received", 0)

	events := cb.Events
	if len(events) > lineutil.MaxEventsPerWebhook {
		h.logger.WithField("event_count", len(events)).
			WithField("limit", lineutil.MaxEventsPerWebhook).
			Warn("Too many events in webhook batch; truncating")
		events = events[:lineutil.MaxEventsPerWebhook]
	}
	events = append([]webhook.EventInterface(nil), events...)
	baseCtx := ctxutil.PreserveTracing(c.Request.Context())

	h.wg.Go(func() {
		defer func() {
			if r := recover(); r != nil {
				h.logger.WithField("panic", r).Error("Panic in async event processing")
				sentry.CaptureRecovered(baseCtx, r, "webhook event processing panic")
			}
		}()
		for _, event := range events {
			h.processEvent(baseCtx, event, start)
		}
	})
}

// processEvent handles a single webhook event.
func (h *Handler) processEvent(ctx context.Context, event webhook.EventInterface, webhookStart time.Time) {
	eventStart := time.Now()
	ctx, cancel := context.WithTimeout(ctx, config.WebhookProcessing)
	defer cancel()

	log := h.logger
	if id := eventID(event); id != "" {
		ctx = ctxutil.WithRequestID(ctx, id)
		log = log.WithRequestID(id)
	}

	var (
		messages   []messaging_api.MessageInterface
		eventType  string
		replyToken string
	)
	switch e := event.(type) {
	case webhook.MessageEvent:
		eventType = "message"
		replyToken = e.ReplyToken
		messages = h.handleMessage(ctx, e)
	case webhook.FollowEvent:
		eventType = "follow"
		replyToken = e.ReplyToken
		messages = h.answer(ctx, chatID(e.Source), followText)
	default:
		log.WithField("event_type", fmt.Sprintf("%T", e)).Debug("Unsupported event type")
		return
	}

	if len(messages) == 0 {
		h.recordWebhook(eventType, "ignored", time.Since(eventStart).Seconds())
		return
	}

	status := "success"
	if err := h.reply(ctx, replyToken, messages); err != nil {
		status = "reply_error"
		log.WithError(err).Warn("Failed to send reply")
	}
	h.recordWebhook(eventType, status, time.Since(eventStart).Seconds())

	log.WithField("event_type", eventType).
		WithField("event_duration_ms", time.Since(eventStart).Milliseconds()).
		WithField("batch_duration_ms", time.Since(webhookStart).Milliseconds()).
		Info("Event processed")
}

// handleMessage answers text messages. Group and room messages are only
// answered when they mention the bot.
func (h *Handler) handleMessage(ctx context.Context, e webhook.MessageEvent) []messaging_api.MessageInterface {
	textMsg, ok := e.Message.(webhook.TextMessageContent)
	if !ok {
		return nil
	}

	text := textMsg.Text
	if !isPersonalChat(e.Source) {
		if !isBotMentioned(textMsg) {
			return nil
		}
		text = removeBotMentions(text, textMsg.Mention)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if h.maxMessageLength > 0 && utf8.RuneCountInString(text) > h.maxMessageLength {
		text = string([]rune(text)[:h.maxMessageLength])
	}

	if uid := userID(e.Source); uid != "" {
		ctx = ctxutil.WithUserID(ctx, uid)
		if h.userLimiter != nil && !h.userLimiter.Allow("line:"+uid) {
			h.logger.WithField("user_id", uid).Debug("User rate limited")
			return nil
		}
	}

	return h.answer(ctx, chatID(e.Source), text)
}

// answer runs text through the processor, using the chat ID as the session.
func (h *Handler) answer(ctx context.Context, chat, text string) []messaging_api.MessageInterface {
	if chat != "" {
		ctx = ctxutil.WithChatID(ctx, chat)
		ctx = ctxutil.WithSessionID(ctx, chat)
	}

	resp := h.processor.HandleMessage(ctx, text)
	if h.sessions != nil {
		h.sessions.Record(chat, session.Turn{
			At:       time.Now(),
			Message:  text,
			Response: resp.Response,
			Intent:   resp.Intent,
			Emotion:  resp.Emotion.Label,
		})
	}
	return buildMessages(resp)
}

// buildMessages converts a chat response into LINE messages: an optional
// professor photo followed by the text answer carrying quick replies.
func buildMessages(resp bot.ChatResponse) []messaging_api.MessageInterface {
	messages := make([]messaging_api.MessageInterface, 0, 2)
	if resp.ImageURL != nil {
		if img, ok := lineutil.NewImageMessage(*resp.ImageURL); ok {
			messages = append(messages, img)
		}
	}

	text := lineutil.NewTextMessage(lineutil.PlainText(resp.Response))
	text.QuickReply = lineutil.NewQuickReply(resp.Suggestions)
	return append(messages, text)
}

// reply sends messages through the global reply limiter.
func (h *Handler) reply(ctx context.Context, token string, messages []messaging_api.MessageInterface) error {
	if len(token) < lineutil.MinReplyTokenLength {
		return fmt.Errorf("invalid reply token length %d", len(token))
	}
	if len(messages) > lineutil.MaxMessagesPerReply {
		messages = messages[:lineutil.MaxMessagesPerReply]
	}

	if !h.replyLimiter.Allow() {
		waitStart := time.Now()
		if err := h.replyLimiter.Wait(ctx); err != nil {
			if h.metrics != nil {
				h.metrics.RecordRateLimiterDrop("reply")
			}
			return fmt.Errorf("wait for reply quota: %w", err)
		}
		if h.metrics != nil {
			h.metrics.RecordRateLimiterWait("reply", time.Since(waitStart).Seconds())
		}
	}

	_, err := h.client.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: token,
		Messages:   messages,
	})
	return err
}

func (h *Handler) recordWebhook(eventType, status string, duration float64) {
	if h.metrics != nil {
		h.metrics.RecordWebhook(eventType, status, duration)
	}
}

func (h *Handler) recordHTTPError(errorType string) {
	if h.metrics != nil {
		h.metrics.RecordHTTPError(errorType, "webhook")
	}
}

// Shutdown waits for all async event processing to complete.
// It returns an error if the context is canceled before completion.
func (h *Handler) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.wg.Wait()
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
