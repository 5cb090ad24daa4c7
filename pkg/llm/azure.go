package llm

import (
	"net/url"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/azure"
	"github.com/openai/openai-go/v3/option"
	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

// Azure is the configuration for an Azure OpenAI resource. Construction never
// fails; Build and Chain reject a configuration the service cannot accept.
type Azure struct {
	APIKey     string
	Endpoint   string
	APIVersion string
	Deployment string
}

func NewAzure(o Overrides, lookup LookupFunc) (*Azure, error) {
	return &Azure{
		APIKey:     Resolve(o.Credential, lookup, EnvAzureAPIKey, ""),
		Endpoint:   Resolve(o.Endpoint, lookup, EnvAzureEndpoint, ""),
		APIVersion: Resolve(o.APIVersion, lookup, EnvOpenAIAPIVersion, ""),
		Deployment: Resolve(o.Deployment, lookup, EnvAzureDeploymentName, ""),
	}, nil
}

func (c *Azure) validate() error {
	if c.APIKey == "" {
		return missingValue("API key", EnvAzureAPIKey)
	}
	if c.Endpoint == "" {
		return missingValue("Endpoint URL", EnvAzureEndpoint)
	}
	if c.APIVersion == "" {
		return missingValue("API version", EnvOpenAIAPIVersion)
	}

	return nil
}

// DeploymentURL is the base URL for requests scoped to the configured
// deployment, or "" when no deployment is set.
func (c *Azure) DeploymentURL() string {
	if c.Deployment == "" {
		return ""
	}

	return strings.TrimRight(c.Endpoint, "/") + "/openai/deployments/" + url.PathEscape(c.Deployment) + "/"
}

func (c *Azure) RequestOptions() []option.RequestOption {
	var opts []option.RequestOption
	if base := c.DeploymentURL(); base != "" {
		opts = append(opts,
			option.WithBaseURL(base),
			option.WithQuery("api-version", c.APIVersion),
		)
	} else {
		opts = append(opts, azure.WithEndpoint(c.Endpoint, c.APIVersion))
	}

	// Drop the bearer token the client picks up from OPENAI_API_KEY.
	return append(opts,
		azure.WithAPIKey(c.APIKey),
		option.WithHeaderDel("authorization"),
	)
}

func (c *Azure) Build() (openai.Client, error) {
	if err := c.validate(); err != nil {
		return openai.Client{}, err
	}

	return openai.NewClient(c.RequestOptions()...), nil
}

func (c *Azure) Chain() (llms.Model, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	opts := []lcopenai.Option{
		lcopenai.WithAPIType(lcopenai.APITypeAzure),
		lcopenai.WithToken(c.APIKey),
		lcopenai.WithBaseURL(c.Endpoint),
		lcopenai.WithAPIVersion(c.APIVersion),
	}
	if c.Deployment != "" {
		opts = append(opts, lcopenai.WithModel(c.Deployment))
	}

	return newChain(opts)
}
