// Package bot answers chat messages from the current directory snapshot.
package bot

import (
	"context"
	"fmt"
	"runtime/debug"
	"slices"
	"time"

	"github.com/findmyprof/findmyprof-chatbot-go/internal/directory"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/intent"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/logger"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/metrics"
	"github.com/findmyprof/findmyprof-chatbot-go/internal/sentry"
)

// ErrorIntent is reported when generating a reply failed unexpectedly.
const ErrorIntent = "error"

// Chat paths used as metric labels.
const (
	pathConversational = "conversational"
	pathDomain         = "domain"
	pathError          = "error"
)

// ChatResponse is the result of handling one chat message.
// Slices are never nil so they encode as [] rather than null.
type ChatResponse struct {
	Success     bool                   `json:"success"`
	Response    string                 `json:"response"`
	Intent      string                 `json:"intent"`
	Emotion     intent.Emotion         `json:"emotion"`
	Professor   *directory.Professor   `json:"professor"`
	Attachments []directory.Attachment `json:"attachments"`
	ImageURL    *string                `json:"image_url"`
	Suggestions []string               `json:"suggestions"`
	Schedules   []directory.Schedule   `json:"schedules"`
	SessionID   string                 `json:"session_id,omitempty"`
	Error       string                 `json:"error,omitempty"`
}

// SnapshotProvider returns the directory snapshot to answer from.
// *directory.Store implements it.
type SnapshotProvider interface {
	Current() *directory.Snapshot
}

// Processor turns a chat message into a ChatResponse: emotion detection,
// conversational small talk, directory intents and empathetic framing.
type Processor struct {
	snapshots    SnapshotProvider
	responder    *Responder
	conversation *Conversation
	logger       *logger.Logger
	metrics      *metrics.Metrics
}

// ProcessorConfig holds dependencies for creating a new Processor.
// Metrics is optional.
type ProcessorConfig struct {
	Snapshots    SnapshotProvider
	Responder    *Responder
	Conversation *Conversation
	Logger       *logger.Logger
	Metrics      *metrics.Metrics
}

// NewProcessor creates a new chat processor. Missing Responder and
// Conversation are created with defaults.
func NewProcessor(cfg ProcessorConfig) *Processor {
	p := &Processor{
		snapshots:    cfg.Snapshots,
		responder:    cfg.Responder,
		conversation: cfg.Conversation,
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
	}
	if p.responder == nil {
		p.responder = NewResponder()
	}
	if p.conversation == nil {
		p.conversation = NewConversation(nil)
	}
	if p.logger == nil {
		p.logger = logger.New("info")
	}
	p.logger = p.logger.WithModule("bot")
	return p
}

// HandleMessage answers text. It never returns an error: lookups that find
// nothing produce a helpful reply, and a panic while generating the reply is
// recovered into a Success=false response with intent ErrorIntent.
// Callers validate that text is non-blank.
func (p *Processor) HandleMessage(ctx context.Context, text string) (resp ChatResponse) {
	start := time.Now()
	emotion := intent.ClassifyEmotion(text)
	path := pathDomain

	defer func() {
		if r := recover(); r != nil {
			path = pathError
			resp = p.recovered(ctx, r, text, emotion)
		}
		if p.metrics != nil {
			p.metrics.RecordChat(resp.Intent, path, emotion.Label, time.Since(start).Seconds())
		}
		p.logger.DebugContext(ctx, "Handled chat message",
			"intent", resp.Intent,
			"emotion", emotion.Label,
			"path", path,
			"duration", time.Since(start),
		)
	}()

	if label, ok := intent.ClassifyConversational(text); ok {
		if reply, ok := p.conversation.Generate(label); ok {
			path = pathConversational
			return newChatResponse(label, emotion, reply)
		}
	}

	label := intent.ClassifyDomain(text)
	reply := p.responder.Generate(label, text, p.snapshots.Current())
	if !emotion.IsNeutral() {
		reply.Text = Decorate(reply.Text, emotion)
	}
	return newChatResponse(label, emotion, reply)
}

func (p *Processor) recovered(ctx context.Context, r any, text string, emotion intent.Emotion) ChatResponse {
	if p.metrics != nil {
		p.metrics.RecordChatPanic()
	}
	p.logger.ErrorContext(ctx, "Recovered panic while generating reply",
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
	sentry.CaptureRecovered(ctx, r, text)

	return ChatResponse{
		Success:     false,
		Response:    errorText,
		Intent:      ErrorIntent,
		Emotion:     emotion,
		Attachments: []directory.Attachment{},
		Suggestions: slices.Clone(errorSuggestions),
		Schedules:   []directory.Schedule{},
		Error:       fmt.Sprintf("internal error: %v", r),
	}
}

// newChatResponse copies reply into a response. Slices are cloned because
// they may alias snapshot data.
func newChatResponse(label string, emotion intent.Emotion, reply Reply) ChatResponse {
	resp := ChatResponse{
		Success:     true,
		Response:    reply.Text,
		Intent:      label,
		Emotion:     emotion,
		Professor:   reply.Professor,
		Attachments: nonNil(slices.Clone(reply.Attachments)),
		Suggestions: nonNil(slices.Clone(reply.Suggestions)),
		Schedules:   nonNil(slices.Clone(reply.Schedules)),
	}
	if reply.ImageRef != "" {
		img := reply.ImageRef
		resp.ImageURL = &img
	}
	return resp
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
