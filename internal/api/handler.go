// Package api serves the JSON chat API: /chat, /reload-data, /health,
// /sessions/:id and the service banner at /.
package api

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/bot"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/ctxutil"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
	domerrors "github.com/findmyprof/findmyprof-chatbot-go/internal/errors"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/logger"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/metrics"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/ratelimit"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/session"
)

// Client-visible response texts.
const (
	bannerMessage      = "FindMyProfessor AI Chatbot API"
	msgRequired        = "Message is required"
	msgInvalidBody     = "Invalid request body"
	msgRateLimited     = "Too many requests, please slow down"
	msgReloaded        = "Data reloaded successfully"
	msgSessionNotFound = "Session not found"
)

// ChatProcessor answers one chat message. *bot.Processor implements it.
type ChatProcessor interface {
	HandleMessage(ctx context.Context, text string) bot.ChatResponse
}

// Reloader refreshes the directory snapshot. *snapshot.Manager implements it.
type Reloader interface {
	Refresh(ctx context.Context) (*directory.Snapshot, error)
}

// Publisher tells other instances to reload. *broadcast.Notifier implements it.
type Publisher interface {
	Publish(ctx context.Context, reason string) error
}

// Config holds dependencies for creating a Handler.
// Limiter, Publisher and Metrics are optional.
type Config struct {
	Processor        ChatProcessor
	Snapshots        bot.SnapshotProvider
	Reloader         Reloader
	Sessions         *session.Store
	Limiter          *ratelimit.KeyedLimiter
	Publisher        Publisher
	MaxMessageLength int // in runes
	Version          string
	Logger           *logger.Logger
	Metrics          *metrics.Metrics
}

// Handler serves the chat API.
type Handler struct {
	processor        ChatProcessor
	snapshots        bot.SnapshotProvider
	reloader         Reloader
	sessions         *session.Store
	limiter          *ratelimit.KeyedLimiter
	publisher        Publisher
	maxMessageLength int
	version          string
	logger           *logger.Logger
	metrics          *metrics.Metrics
}

// NewHandler creates a Handler.
func NewHandler(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = logger.New("info")
	}
	return &Handler{
		processor:        cfg.Processor,
		snapshots:        cfg.Snapshots,
		reloader:         cfg.Reloader,
		sessions:         cfg.Sessions,
		limiter:          cfg.Limiter,
		publisher:        cfg.Publisher,
		maxMessageLength: cfg.MaxMessageLength,
		version:          cfg.Version,
		logger:           cfg.Logger.WithModule("api"),
		metrics:          cfg.Metrics,
	}
}

// Register mounts the API routes on r. sessionAuth guards the session
// history route, which exposes other users' messages.
func (h *Handler) Register(r gin.IRoutes, sessionAuth ...gin.HandlerFunc) {
	r.GET("/", h.Banner)
	r.HEAD("/", h.Banner)
	r.POST("/chat", h.Chat)
	r.POST("/reload-data", h.ReloadData)
	r.GET("/health", h.Health)
	r.GET("/sessions/:id", append(sessionAuth, h.Session)...)
}

// Banner describes the service.
func (h *Handler) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": bannerMessage,
		"version": h.version,
		"status":  "running",
		"engine":  "Go",
	})
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// Chat answers POST /chat.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.reject(c, http.StatusBadRequest, "invalid_input", msgInvalidBody)
		return
	}

	message := strings.TrimSpace(req.Message)
	if err := h.validate(message); err != nil {
		h.reject(c, http.StatusBadRequest, "invalid_input", domerrors.GetUserMessage(err))
		return
	}

	if h.limiter != nil && !h.limiter.Allow("ip:"+c.ClientIP()) {
		c.Header("Retry-After", "1")
		h.reject(c, http.StatusTooManyRequests, "rate_limit", msgRateLimited)
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	ctx := ctxutil.WithSessionID(c.Request.Context(), sessionID)

	resp := h.processor.HandleMessage(ctx, message)
	resp.SessionID = sessionID

	if h.sessions != nil {
		h.sessions.Record(sessionID, session.Turn{
			At:       time.Now(),
			Message:  message,
			Response: resp.Response,
			Intent:   resp.Intent,
			Emotion:  resp.Emotion.Label,
		})
	}

	status := http.StatusOK
	if !resp.Success {
		status = http.StatusInternalServerError
	}
	c.JSON(status, resp)
}

// validate checks a trimmed chat message.
func (h *Handler) validate(message string) error {
	wrapper := domerrors.NewWrapper("api", "chat")
	if message == "" {
		return wrapper.Wrap(domerrors.ErrEmptyMessage, msgRequired)
	}
	if h.maxMessageLength > 0 && utf8.RuneCountInString(message) > h.maxMessageLength {
		return wrapper.Wrapf(domerrors.ErrMessageTooLong, "Message must be at most %d characters", h.maxMessageLength)
	}
	return nil
}

func (h *Handler) reject(c *gin.Context, status int, errorType, message string) {
	if h.metrics != nil {
		h.metrics.RecordHTTPError(errorType, "api")
	}
	c.JSON(status, gin.H{"error": message})
}

// ReloadData refreshes the snapshot now and asks peers to do the same.
func (h *Handler) ReloadData(c *gin.Context) {
	ctx := c.Request.Context()
	snap, err := h.reloader.Refresh(ctx)
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordHTTPError("reload_failed", "api")
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   domerrors.GetUserMessage(err),
		})
		return
	}

	if h.publisher != nil {
		if err := h.publisher.Publish(ctx, "reload-data"); err != nil {
			h.logger.WithError(err).WarnContext(ctx, "Failed to broadcast reload to peers")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msgReloaded,
		"counts":  snap.Counts(),
	})
}

type healthResponse struct {
	Status string `json:"status"`
	directory.Counts
	SnapshotVersion uint64    `json:"snapshot_version"`
	LoadedAt        time.Time `json:"loaded_at"`
}

// Health reports the size of the served snapshot.
func (h *Handler) Health(c *gin.Context) {
	snap := h.snapshots.Current()
	c.JSON(http.StatusOK, healthResponse{
		Status:          "healthy",
		Counts:          snap.Counts(),
		SnapshotVersion: snap.Version(),
		LoadedAt:        snap.LoadedAt(),
	})
}

// Session returns the recent turns of a session.
func (h *Handler) Session(c *gin.Context) {
	id := c.Param("id")
	var turns []session.Turn
	ok := false
	if h.sessions != nil {
		turns, ok = h.sessions.History(id)
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": msgSessionNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": id,
		"turns":      turns,
		"count":      len(turns),
	})
}

