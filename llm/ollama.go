// Package llm provides the concrete language-model backends and the
// factory that selects between them.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"

	"github.com/contentchat/contentchat"
)

// Ollama talks to a locally running Ollama server. The model catalog is
// whatever `ollama list` would show.
type Ollama struct {
	client *api.Client
}

// NewOllama builds a backend for the given host URL. An empty host
// falls back to the OLLAMA_HOST environment variable and then the
// default localhost address.
func NewOllama(host string) (*Ollama, error) {
	if host == "" {
		client, err := api.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("configuring ollama client: %w", err)
		}
		return &Ollama{client: client}, nil
	}
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("parsing ollama host %q: %w", host, err)
	}
	return &Ollama{client: api.NewClient(base, http.DefaultClient)}, nil
}

func (o *Ollama) ListModels(ctx context.Context) ([]string, error) {
	resp, err := o.client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing ollama models: %v", contentchat.ErrBackendUnavailable, err)
	}
	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Chat issues a single non-streaming completion. The context budget is
// forwarded as Ollama's num_ctx option.
func (o *Ollama) Chat(ctx context.Context, model string, history []contentchat.Message, opts contentchat.ChatOptions) (contentchat.Message, error) {
	messages := make([]api.Message, 0, len(history))
	for _, m := range history {
		messages = append(messages, api.Message{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	options := map[string]interface{}{}
	if opts.ContextBudget > 0 {
		options["num_ctx"] = opts.ContextBudget
	}

	stream := false
	req := &api.ChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   &stream,
		Options:  options,
	}

	var content string
	err := o.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		content += resp.Message.Content
		return nil
	})
	if err != nil {
		return contentchat.Message{}, fmt.Errorf("%w: ollama chat: %v", contentchat.ErrBackendUnavailable, err)
	}
	return contentchat.AssistantMessage(content), nil
}
