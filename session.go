// Package contentchat holds the conversation session over loaded content:
// a YouTube video's subtitles or a webpage's extracted text, discussed
// with an interchangeable language-model backend.
package contentchat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/contentchat/contentchat/prompts"
)

// DefaultContextBudget is the token window passed to backends until the
// caller overrides it.
const DefaultContextBudget = 32000

// Session owns the full mutable state of one conversation: the loaded
// content, the cached model catalog, the active model, and the message
// history resent to the backend on every turn. It performs no network
// or terminal I/O itself and holds no locks - callers embedding it in a
// concurrent host must serialize access externally.
type Session struct {
	id      string
	backend ChatBackend
	source  ContentSource
	config  ConfigStore
	logger  *slog.Logger

	activeModel     string
	availableModels []string
	contentText     string
	sourceKind      SourceKind
	sourceLocator   string
	history         *History
	contextBudget   int
}

// NewSession constructs a session around the injected collaborators.
// The default model is read from the config store so a selection made
// in an earlier process launch carries over.
func NewSession(backend ChatBackend, source ContentSource, config ConfigStore) *Session {
	sessionID, err := gonanoid.New()
	if err != nil {
		panic(err)
	}
	s := &Session{
		id:            sessionID,
		backend:       backend,
		source:        source,
		config:        config,
		logger:        slog.Default(),
		history:       NewHistory(),
		contextBudget: DefaultContextBudget,
	}
	if model, ok := config.Read(KeySelectedModel); ok {
		s.activeModel = model
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) ActiveModel() string {
	return s.activeModel
}

// Content returns the currently loaded text, empty when nothing is loaded.
func (s *Session) Content() string {
	return s.contentText
}

func (s *Session) Kind() SourceKind {
	return s.sourceKind
}

func (s *Session) Locator() string {
	return s.sourceLocator
}

// History returns a copy of the transcript; mutating it does not affect
// the session.
func (s *Session) History() []Message {
	return append([]Message{}, s.history.All()...)
}

func (s *Session) ContextBudget() int {
	return s.contextBudget
}

// SetContextBudget overrides the token window passed to the backend.
func (s *Session) SetContextBudget(budget int) {
	s.contextBudget = budget
}

// ensureModels populates the model catalog on first use and defaults
// the active model to the catalog's first entry. A failed fetch is not
// cached - the next call retries.
func (s *Session) ensureModels(ctx context.Context) error {
	if len(s.availableModels) > 0 {
		return nil
	}
	models, err := s.backend.ListModels(ctx)
	if err != nil {
		return err
	}
	s.availableModels = models
	if s.activeModel == "" && len(models) > 0 {
		s.activeModel = models[0]
	}
	return nil
}

// ListModels returns the model catalog, fetching it from the backend
// only when the cache is empty. Callers get a copy.
func (s *Session) ListModels(ctx context.Context) ([]string, error) {
	if err := s.ensureModels(ctx); err != nil {
		return nil, err
	}
	return append([]string{}, s.availableModels...), nil
}

// SetModel selects a model from the catalog and persists the selection
// so later process launches default to it.
func (s *Session) SetModel(ctx context.Context, name string) error {
	if err := s.ensureModels(ctx); err != nil {
		return err
	}
	found := false
	for _, m := range s.availableModels {
		if m == name {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrInvalidModel, name)
	}
	previous := s.activeModel
	s.activeModel = name
	if err := s.config.Write(KeySelectedModel, name); err != nil {
		s.activeModel = previous
		return err
	}
	return nil
}

// Load fetches the content behind locator and rebuilds the message
// history from scratch, discarding any prior conversation. Content
// text, source kind, and locator change together or not at all.
func (s *Session) Load(ctx context.Context, locator string) error {
	kind, videoID, err := ClassifyLocator(locator)
	if err != nil {
		return err
	}

	var text string
	switch kind {
	case SourceVideo:
		text, err = s.source.FetchVideo(ctx, videoID)
	default:
		text, err = s.source.FetchWebpage(ctx, locator)
	}
	if err != nil {
		return err
	}

	seed, err := seedMessages(kind, locator, text)
	if err != nil {
		return err
	}

	s.contentText = text
	s.sourceKind = kind
	s.sourceLocator = locator
	s.history = &History{Messages: seed}
	s.logger.Info("content loaded",
		"sessionID", s.id, "kind", kind.String(), "chars", len(text))
	return nil
}

// Ask sends one user turn to the backend, with the entire prior history
// in front of it, and appends the reply to the transcript. A failed
// backend call leaves the history exactly as it was.
func (s *Session) Ask(ctx context.Context, userText string) (string, error) {
	if strings.TrimSpace(userText) == "" {
		return "", ErrEmptyInput
	}
	if err := s.ensureModels(ctx); err != nil {
		return "", err
	}

	turnID := uuid.NewString()
	s.history.Add(UserMessage(userText))
	reply, err := s.backend.Chat(ctx, s.activeModel, s.history.All(), ChatOptions{
		ContextBudget: s.contextBudget,
	})
	if err != nil {
		s.history.DropLast(1)
		return "", err
	}
	s.history.Add(reply)
	s.logger.Debug("chat turn completed",
		"sessionID", s.id, "turnID", turnID, "model", s.activeModel)
	return reply.Content, nil
}

// Summarize asks the backend for a summary of the loaded content. The
// summary request and its reply are issued as a side call on a copy of
// the history and do not persist into the transcript - the model will
// not remember having summarized.
func (s *Session) Summarize(ctx context.Context) (string, error) {
	if s.contentText == "" {
		return "", ErrNoContent
	}
	if err := s.ensureModels(ctx); err != nil {
		return "", err
	}

	prompt, err := prompts.Summary(prompts.ContentData{Content: s.contentText})
	if err != nil {
		return "", err
	}
	messages := append(s.history.Clone().All(), UserMessage(prompt))
	reply, err := s.backend.Chat(ctx, s.activeModel, messages, ChatOptions{
		ContextBudget: s.contextBudget,
	})
	if err != nil {
		return "", err
	}
	return reply.Content, nil
}

// ClearHistory discards the conversation. When content is loaded the
// original three-message seed is restored; otherwise the history is
// emptied. Reseeding is deterministic - calling this twice yields the
// same transcript.
func (s *Session) ClearHistory() error {
	if s.contentText == "" {
		s.history.Clear()
		return nil
	}
	seed, err := seedMessages(s.sourceKind, s.sourceLocator, s.contentText)
	if err != nil {
		return err
	}
	s.history = &History{Messages: seed}
	return nil
}

// Reset restores the session to its initial empty state: no content, no
// history, no cached catalog, default context budget. The injected
// backend, content source, and config store stay - this is a data
// reset, not a collaborator reset. The active model falls back to the
// configured default.
func (s *Session) Reset() {
	s.activeModel = ""
	if model, ok := s.config.Read(KeySelectedModel); ok {
		s.activeModel = model
	}
	s.availableModels = nil
	s.contentText = ""
	s.sourceKind = SourceNone
	s.sourceLocator = ""
	s.history = NewHistory()
	s.contextBudget = DefaultContextBudget
}

// SwapBackend replaces the language-model provider without touching the
// conversation history - that is the operation's entire purpose. The
// cached catalog is invalidated and the new backend is queried
// immediately; its first model becomes the active default and is
// persisted. If discovery on the new backend fails, the active model is
// cleared rather than left pointing at the old provider's catalog, and
// the error is swallowed - callers observe the empty selection and
// re-run ListModels or SetModel.
func (s *Session) SwapBackend(ctx context.Context, backend ChatBackend) {
	s.backend = backend
	s.availableModels = nil

	models, err := backend.ListModels(ctx)
	if err != nil || len(models) == 0 {
		s.activeModel = ""
		s.logger.Warn("model discovery failed on swapped backend",
			"sessionID", s.id, "error", err)
		return
	}
	s.availableModels = models
	s.activeModel = models[0]
	if err := s.config.Write(KeySelectedModel, s.activeModel); err != nil {
		s.logger.Warn("could not persist model selection",
			"sessionID", s.id, "error", err)
	}
}

// seedMessages builds the three-message transcript for the given source
// kind. The backend is stateless, so this seed is the only place the
// loaded content enters the conversation.
func seedMessages(kind SourceKind, locator, text string) ([]Message, error) {
	data := prompts.ContentData{Locator: locator, Content: text}

	var system, ack string
	var user string
	var err error
	switch kind {
	case SourceWebpage:
		system, ack = prompts.WebpageSystem, prompts.WebpageAck
		user, err = prompts.WebpageUser(data)
	case SourceVideo:
		system, ack = prompts.VideoSystem, prompts.VideoAck
		user, err = prompts.VideoUser(data)
	default:
		system, ack = prompts.GenericSystem, prompts.GenericAck
		user, err = prompts.GenericUser(data)
	}
	if err != nil {
		return nil, err
	}

	return []Message{
		SystemMessage(system),
		UserMessage(user),
		AssistantMessage(ack),
	}, nil
}
