package llm

import (
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

const DefaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAI is the configuration for the hosted OpenAI API.
type OpenAI struct {
	APIKey       string
	BaseURL      string
	Organization string
	Project      string
	Model        string
}

// NewOpenAI fails when no API key is given and OPENAI_API_KEY is unset.
func NewOpenAI(o Overrides, lookup LookupFunc) (*OpenAI, error) {
	key, err := Require(o.Credential, lookup, EnvOpenAIAPIKey, "API key")
	if err != nil {
		return nil, err
	}

	return &OpenAI{
		APIKey:       key,
		BaseURL:      Resolve(o.Endpoint, nil, "", DefaultOpenAIBaseURL),
		Organization: Resolve(o.Organization, lookup, EnvOpenAIOrgID, ""),
		Project:      Resolve(o.Project, lookup, EnvOpenAIProjectID, ""),
		Model:        o.Model,
	}, nil
}

func (c *OpenAI) RequestOptions() []option.RequestOption {
	opts := []option.RequestOption{
		option.WithAPIKey(c.APIKey),
		option.WithBaseURL(c.BaseURL),
	}
	if c.Organization != "" {
		opts = append(opts, option.WithOrganization(c.Organization))
	}
	if c.Project != "" {
		opts = append(opts, option.WithProject(c.Project))
	}

	return opts
}

func (c *OpenAI) Build() (openai.Client, error) {
	return openai.NewClient(c.RequestOptions()...), nil
}

func (c *OpenAI) Chain() (llms.Model, error) {
	opts := []lcopenai.Option{
		lcopenai.WithToken(c.APIKey),
		lcopenai.WithBaseURL(c.BaseURL),
	}
	if c.Organization != "" {
		opts = append(opts, lcopenai.WithOrganization(c.Organization))
	}
	if c.Model != "" {
		opts = append(opts, lcopenai.WithModel(c.Model))
	}

	return newChain(opts)
}

func newChain(opts []lcopenai.Option) (llms.Model, error) {
	m, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating langchain model: %w", err)
	}

	return m, nil
}
