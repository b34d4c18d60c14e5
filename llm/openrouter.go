package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/contentchat/contentchat"
)

const (
	// OpenRouterBaseURL is the OpenAI-compatible API root.
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"

	// OpenRouterRoutingModel routes requests to whatever free-tier
	// model is available, so the catalog is this one fixed entry.
	OpenRouterRoutingModel = "openrouter/free"
)

// OpenRouter serves chat completions through OpenRouter's free tier
// using the OpenAI wire protocol.
type OpenRouter struct {
	client *openai.Client
}

func NewOpenRouter(apiKey string) *OpenRouter {
	client := openai.NewClient(
		option.WithBaseURL(OpenRouterBaseURL),
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)
	return &OpenRouter{client: client}
}

// ListModels validates the API key with a models request and returns
// the single routing identifier. OpenRouter picks the concrete model
// per request, so there is nothing useful to enumerate.
func (o *OpenRouter) ListModels(ctx context.Context) ([]string, error) {
	if _, err := o.client.Models.List(ctx); err != nil {
		return nil, fmt.Errorf("%w: validating OpenRouter API key: %v", contentchat.ErrBackendUnavailable, err)
	}
	return []string{OpenRouterRoutingModel}, nil
}

// Chat issues one completion. The context budget is not forwarded -
// OpenRouter manages the window of whichever model it routes to.
func (o *OpenRouter) Chat(ctx context.Context, model string, history []contentchat.Message, _ contentchat.ChatOptions) (contentchat.Message, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case contentchat.RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case contentchat.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F(messages),
		Model:    openai.F(model),
	})
	if err != nil {
		return contentchat.Message{}, fmt.Errorf("%w: OpenRouter chat: %v", contentchat.ErrBackendUnavailable, err)
	}
	if len(completion.Choices) == 0 {
		return contentchat.Message{}, fmt.Errorf("%w: OpenRouter returned no choices", contentchat.ErrBackendUnavailable)
	}
	return contentchat.AssistantMessage(completion.Choices[0].Message.Content), nil
}
