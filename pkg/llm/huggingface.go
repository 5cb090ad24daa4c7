package llm

import (
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

// HuggingFace is the configuration for a Hugging Face inference endpoint
// serving the OpenAI-compatible API.
type HuggingFace struct {
	APIKey  string
	BaseURL string
	Model   string
}

// NewHuggingFace requires both a token and an endpoint URL.
func NewHuggingFace(o Overrides, lookup LookupFunc) (*HuggingFace, error) {
	key, err := Require(o.Credential, lookup, EnvHFAPIToken, "API key")
	if err != nil {
		return nil, err
	}

	url, err := Require(o.Endpoint, lookup, EnvHFEndpointURL, "Endpoint URL")
	if err != nil {
		return nil, err
	}

	return &HuggingFace{
		APIKey:  key,
		BaseURL: url,
		Model:   o.Model,
	}, nil
}

func (c *HuggingFace) RequestOptions() []option.RequestOption {
	return []option.RequestOption{
		option.WithAPIKey(c.APIKey),
		option.WithBaseURL(c.BaseURL),
	}
}

func (c *HuggingFace) Build() (openai.Client, error) {
	return openai.NewClient(c.RequestOptions()...), nil
}

func (c *HuggingFace) Chain() (llms.Model, error) {
	opts := []lcopenai.Option{
		lcopenai.WithToken(c.APIKey),
		lcopenai.WithBaseURL(c.BaseURL),
	}
	if c.Model != "" {
		opts = append(opts, lcopenai.WithModel(c.Model))
	}

	return newChain(opts)
}
