package llm

import (
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

// OllamaPlaceholderKey is sent when no key is configured. Ollama ignores it.
const OllamaPlaceholderKey = "ollama"

// Ollama is the configuration for a local Ollama server's OpenAI-compatible API.
type Ollama struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewOllama never fails.
func NewOllama(o Overrides, lookup LookupFunc) (*Ollama, error) {
	return &Ollama{
		APIKey:  Resolve(o.Credential, nil, "", OllamaPlaceholderKey),
		BaseURL: Resolve(o.Endpoint, lookup, EnvOllamaEndpointURL, ""),
		Model:   o.Model,
	}, nil
}

func (c *Ollama) RequestOptions() []option.RequestOption {
	opts := []option.RequestOption{
		option.WithAPIKey(c.APIKey),
	}
	if c.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(c.BaseURL))
	}

	return opts
}

func (c *Ollama) Build() (openai.Client, error) {
	return openai.NewClient(c.RequestOptions()...), nil
}

func (c *Ollama) Chain() (llms.Model, error) {
	opts := []lcopenai.Option{
		lcopenai.WithToken(c.APIKey),
	}
	if c.BaseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(c.BaseURL))
	}
	if c.Model != "" {
		opts = append(opts, lcopenai.WithModel(c.Model))
	}

	return newChain(opts)
}
