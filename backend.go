package contentchat

import (
	"context"
)

// ChatOptions carries free-form tuning knobs for a single chat call.
// Backends that have no use for a knob ignore it.
type ChatOptions struct {
	// ContextBudget is the token window the backend should reserve for
	// the conversation, where the provider supports configuring one.
	ContextBudget int
}

// ChatBackend is the minimal contract required by the session to
// interact with a language-model provider. Implementations may differ
// widely in catalog semantics - a real enumerable list or a single
// fixed routing identifier - but must return at least one element,
// with the first element being a sane default.
type ChatBackend interface {
	// ListModels enumerates the model identifiers this provider serves.
	ListModels(ctx context.Context) ([]string, error)

	// Chat executes one completion turn. The full ordered history is
	// sent on every call; the backend keeps no state between calls.
	Chat(ctx context.Context, model string, history []Message, opts ChatOptions) (Message, error)
}
