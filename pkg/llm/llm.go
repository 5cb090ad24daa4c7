// Package llm builds pre-configured OpenAI-compatible clients for a small set
// of upstream variants, resolving credentials and endpoints from explicit
// overrides or the environment.
package llm

import (
	"github.com/openai/openai-go/v3"
	"github.com/tmc/langchaingo/llms"
)

// Environment variables consulted by the built-in variants.
const (
	EnvOpenAIAPIKey        = "OPENAI_API_KEY"
	EnvOpenAIOrgID         = "OPENAI_ORG_ID"
	EnvOpenAIProjectID     = "OPENAI_PROJECT_ID"
	EnvAzureAPIKey         = "AZURE_OPENAI_API_KEY"
	EnvAzureEndpoint       = "AZURE_OPENAI_ENDPOINT"
	EnvOpenAIAPIVersion    = "OPENAI_API_VERSION"
	EnvAzureDeploymentName = "AZURE_OPENAI_DEPLOYMENT_NAME"
	EnvOllamaEndpointURL   = "OLLAMA_ENDPOINT_URL"
	EnvHFAPIToken          = "HF_API_TOKEN"
	EnvHFEndpointURL       = "HF_ENDPOINT_URL"
)

// Builder produces a configured client. All configuration is captured when the
// Builder is constructed.
type Builder interface {
	Build() (openai.Client, error)
}

// ChainBuilder is implemented by variants that can also produce a langchaingo
// model from the same resolved configuration.
type ChainBuilder interface {
	Chain() (llms.Model, error)
}

// Overrides are explicit values that take precedence over the environment.
// Empty fields fall back to the variant's environment variable or default.
type Overrides struct {
	Credential string
	Endpoint   string

	Organization string
	Project      string
	APIVersion   string
	Deployment   string

	// Model is only used by Chain.
	Model string
}

// Constructor resolves a variant's configuration.
type Constructor func(o Overrides, lookup LookupFunc) (Builder, error)

// NewConstructor adapts a typed constructor to a Constructor.
func NewConstructor[T Builder](fn func(Overrides, LookupFunc) (T, error)) Constructor {
	return func(o Overrides, lookup LookupFunc) (Builder, error) {
		b, err := fn(o, lookup)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}
