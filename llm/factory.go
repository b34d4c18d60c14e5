package llm

import (
	"fmt"
	"strings"

	"github.com/contentchat/contentchat"
)

// Provider identifiers accepted in SELECTED_LLM_PROVIDER.
const (
	ProviderOllama     = "ollama"
	ProviderOpenRouter = "openrouter"
)

// selectionAttempts bounds the interactive provider prompt. Exhausting
// it yields ErrInvalidChoice instead of looping forever.
const selectionAttempts = 3

// Prompter asks the user one question and returns the raw answer line.
type Prompter func(question string) (string, error)

// Factory resolves which backend to construct: from the config store
// when a provider is already selected, otherwise interactively through
// the injected prompter. The choice is persisted either way.
type Factory struct {
	Config     contentchat.ConfigStore
	OllamaHost string
	Prompt     Prompter
}

// New returns the resolved backend and the provider identifier it was
// built from. With forceInteractive the stored selection is ignored and
// the user is asked again.
func (f *Factory) New(forceInteractive bool) (contentchat.ChatBackend, string, error) {
	provider := ""
	if !forceInteractive {
		if v, ok := f.Config.Read(contentchat.KeySelectedProvider); ok {
			provider = strings.ToLower(strings.TrimSpace(v))
		}
	}

	if provider == "" {
		selected, err := f.selectProvider()
		if err != nil {
			return nil, "", err
		}
		provider = selected
		if err := f.Config.Write(contentchat.KeySelectedProvider, provider); err != nil {
			return nil, "", err
		}
	}

	backend, err := f.build(provider)
	if err != nil {
		return nil, "", err
	}
	return backend, provider, nil
}

func (f *Factory) build(provider string) (contentchat.ChatBackend, error) {
	switch provider {
	case ProviderOllama:
		return NewOllama(f.OllamaHost)
	case ProviderOpenRouter:
		key, ok := f.Config.Read(contentchat.KeyOpenRouterAPIKey)
		if !ok {
			return nil, fmt.Errorf(
				"OpenRouter API key not configured: add %s=<your key> to the env file (keys at https://openrouter.ai/keys)",
				contentchat.KeyOpenRouterAPIKey)
		}
		return NewOpenRouter(key), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", provider)
	}
}

const providerQuestion = `Select LLM provider:
  (1) Ollama (local, requires Ollama running)
  (2) OpenRouter (free tier models, requires API key)
Enter choice (1 or 2): `

func (f *Factory) selectProvider() (string, error) {
	if f.Prompt == nil {
		return "", fmt.Errorf("no provider selected and no prompter configured")
	}
	for attempt := 0; attempt < selectionAttempts; attempt++ {
		answer, err := f.Prompt(providerQuestion)
		if err != nil {
			return "", err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "1", ProviderOllama:
			return ProviderOllama, nil
		case "2", ProviderOpenRouter:
			return ProviderOpenRouter, nil
		}
	}
	return "", contentchat.ErrInvalidChoice
}
