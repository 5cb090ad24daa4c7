package models

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/codingconcepts/env"
	"github.com/joho/godotenv"
)

// Environment is a snapshot of every variable the client factory reads.
type Environment struct {
	OpenAIAPIKey        string `env:"OPENAI_API_KEY"`
	OpenAIOrgID         string `env:"OPENAI_ORG_ID"`
	OpenAIProjectID     string `env:"OPENAI_PROJECT_ID"`
	AzureAPIKey         string `env:"AZURE_OPENAI_API_KEY"`
	AzureEndpoint       string `env:"AZURE_OPENAI_ENDPOINT"`
	OpenAIAPIVersion    string `env:"OPENAI_API_VERSION"`
	AzureDeploymentName string `env:"AZURE_OPENAI_DEPLOYMENT_NAME"`
	OllamaEndpointURL   string `env:"OLLAMA_ENDPOINT_URL"`
	HFAPIToken          string `env:"HF_API_TOKEN"`
	HFEndpointURL       string `env:"HF_ENDPOINT_URL"`

	LogLevel string `env:"LOG_LEVEL" default:"info"`
}

// LoadEnvironment loads the given dotenv files (".env" when none are given)
// into the process environment and snapshots it. Missing files are skipped and
// variables already set in the process win over the files.
func LoadEnvironment(files ...string) (Environment, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Environment{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var e Environment
	if err := env.Set(&e); err != nil {
		return Environment{}, fmt.Errorf("setting variables from environment: %w", err)
	}

	return e, nil
}

// Lookup returns a lookup function over the non-empty values of the snapshot,
// keyed by their environment variable names.
func (e Environment) Lookup() func(key string) (string, bool) {
	values := map[string]string{
		"OPENAI_API_KEY":               e.OpenAIAPIKey,
		"OPENAI_ORG_ID":                e.OpenAIOrgID,
		"OPENAI_PROJECT_ID":            e.OpenAIProjectID,
		"AZURE_OPENAI_API_KEY":         e.AzureAPIKey,
		"AZURE_OPENAI_ENDPOINT":        e.AzureEndpoint,
		"OPENAI_API_VERSION":           e.OpenAIAPIVersion,
		"AZURE_OPENAI_DEPLOYMENT_NAME": e.AzureDeploymentName,
		"OLLAMA_ENDPOINT_URL":          e.OllamaEndpointURL,
		"HF_API_TOKEN":                 e.HFAPIToken,
		"HF_ENDPOINT_URL":              e.HFEndpointURL,
	}

	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok && v != ""
	}
}
