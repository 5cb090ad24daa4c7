package llm

import (
	"io"
	"log/slog"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBuilder struct {
	o Overrides
}

func (s *stubBuilder) Build() (openai.Client, error) {
	return openai.NewClient(option.WithAPIKey("stub")), nil
}

func newStubConstructor(calls *int) Constructor {
	return NewConstructor(func(o Overrides, _ LookupFunc) (*stubBuilder, error) {
		*calls++
		return &stubBuilder{o: o}, nil
	})
}

func fullEnv() map[string]string {
	return map[string]string{
		EnvOpenAIAPIKey:        gofakeit.UUID(),
		EnvAzureAPIKey:         gofakeit.UUID(),
		EnvAzureEndpoint:       gofakeit.URL(),
		EnvOpenAIAPIVersion:    "2024-06-01",
		EnvAzureDeploymentName: "gpt-4o",
		EnvOllamaEndpointURL:   "http://localhost:11434/v1",
		EnvHFAPIToken:          gofakeit.UUID(),
		EnvHFEndpointURL:       gofakeit.URL(),
	}
}

func newTestRegistry(env map[string]string) *Registry {
	return NewRegistry(
		WithLookup(MapLookup(env)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func TestRegistryCreateBuiltIns(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(fullEnv())

	for _, name := range []string{"openai", "azure", "ollama", "huggingface", "OpenAI", "AZURE", "Ollama", "HuggingFace"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client, err := r.CreateClient(name, "", "")
			require.NoError(t, err)
			assert.NotEmpty(t, client.Options)
		})
	}
}

func TestRegistryCaseInsensitive(t *testing.T) {
	t.Parallel()

	env := fullEnv()
	r := newTestRegistry(env)

	var resolved []Builder
	for _, name := range []string{"OpenAI", "openai", "OPENAI"} {
		b, err := r.Resolve(name, Overrides{})
		require.NoError(t, err)
		resolved = append(resolved, b)
	}

	for _, b := range resolved {
		assert.Equal(t, &OpenAI{APIKey: env[EnvOpenAIAPIKey], BaseURL: DefaultOpenAIBaseURL}, b)
	}
}

func TestRegistryUnknown(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(nil)

	_, err := r.CreateClient("anthropic", "", "")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Equal(t, "unknown client name: anthropic. Valid options are azure, huggingface, ollama, openai.", err.Error())

	var calls int
	r.Register("Custom", newStubConstructor(&calls))

	_, err = r.Create("missing", Overrides{})
	require.Error(t, err)
	assert.Equal(t, "unknown client name: missing. Valid options are azure, custom, huggingface, ollama, openai.", err.Error())
	assert.Zero(t, calls)
}

func TestRegistryOpenAIRequiresKey(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(nil)

	_, err := r.CreateClient("openai", "", "")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Contains(t, err.Error(), EnvOpenAIAPIKey)

	_, err = r.CreateClient("openai", gofakeit.UUID(), "")
	require.NoError(t, err)

	r = newTestRegistry(map[string]string{EnvOpenAIAPIKey: gofakeit.UUID()})
	_, err = r.CreateClient("openai", "", "")
	require.NoError(t, err)
}

func TestRegistryHuggingFaceRequiresBoth(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(nil)

	_, err := r.CreateClient("huggingface", gofakeit.UUID(), "")
	assert.True(t, IsConfigError(err))

	_, err = r.CreateClient("huggingface", "", gofakeit.URL())
	assert.True(t, IsConfigError(err))

	_, err = r.CreateClient("huggingface", gofakeit.UUID(), gofakeit.URL())
	assert.NoError(t, err)
}

func TestRegistryOllamaWithoutCredential(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(nil)

	b, err := r.Resolve("ollama", Overrides{})
	require.NoError(t, err)
	assert.Equal(t, OllamaPlaceholderKey, b.(*Ollama).APIKey)

	_, err = r.CreateClient("ollama", "", "")
	assert.NoError(t, err)
}

func TestRegistryRegisterOverwrites(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(fullEnv())

	var first, second int
	r.Register("OpenAI", newStubConstructor(&first))
	r.Register("openai", newStubConstructor(&second))

	b, err := r.Resolve("OPENAI", Overrides{Credential: "c", Endpoint: "e"})
	require.NoError(t, err)
	require.IsType(t, &stubBuilder{}, b)
	assert.Equal(t, Overrides{Credential: "c", Endpoint: "e"}, b.(*stubBuilder).o)

	_, err = r.CreateClient("openai", "", "")
	require.NoError(t, err)

	assert.Zero(t, first)
	assert.Equal(t, 2, second)
	assert.Equal(t, []string{"azure", "huggingface", "ollama", "openai"}, r.Names())
}

func TestRegistryCreateChain(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(fullEnv())

	m, err := r.CreateChain("huggingface", Overrides{Model: "tgi"})
	require.NoError(t, err)
	assert.NotNil(t, m)

	var calls int
	r.Register("plain", newStubConstructor(&calls))

	_, err = r.CreateChain("plain", Overrides{})
	require.Error(t, err)
	assert.True(t, IsConfigError(err))

	_, err = r.CreateChain("unknown", Overrides{})
	assert.True(t, IsConfigError(err))
}
