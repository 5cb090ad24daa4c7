package llm

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"swarm/pkg/models"
	"sync"

	"github.com/openai/openai-go/v3"
	"github.com/samber/lo"
	"github.com/tmc/langchaingo/llms"
)

// Registry maps case-insensitive variant names to constructors.
//
// Create and Resolve only read the registry. Register may be called at any
// time, but callers are expected to finish registration before resolving.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor

	lookup LookupFunc
	logger *slog.Logger
}

type Option func(*Registry)

// WithLookup sets where missing values are read from. Defaults to OSLookup.
func WithLookup(lookup LookupFunc) Option {
	return func(r *Registry) {
		r.lookup = lookup
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry returns a registry seeded with the built-in variants.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		constructors: map[string]Constructor{
			string(models.VariantOpenAI):      NewConstructor(NewOpenAI),
			string(models.VariantAzure):       NewConstructor(NewAzure),
			string(models.VariantOllama):      NewConstructor(NewOllama),
			string(models.VariantHuggingFace): NewConstructor(NewHuggingFace),
		},
		lookup: OSLookup,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds or replaces the constructor for name.
func (r *Registry) Register(name string, c Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.constructors[strings.ToLower(name)] = c
}

// Names returns the registered variant names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.constructors)
	slices.Sort(names)
	return names
}

// Resolve constructs the named variant's configuration without building a client.
func (r *Registry) Resolve(name string, o Overrides) (Builder, error) {
	r.mu.RLock()
	c, ok := r.constructors[strings.ToLower(name)]
	r.mu.RUnlock()

	if !ok {
		return nil, configErrorf("unknown client name: %s. Valid options are %s.", name, strings.Join(r.Names(), ", "))
	}

	b, err := c(o, r.lookup)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("client configuration resolved",
		slog.String("variant", strings.ToLower(name)),
		slog.String("type", fmt.Sprintf("%T", b)),
	)

	return b, nil
}

// Create resolves the named variant and builds its client.
func (r *Registry) Create(name string, o Overrides) (openai.Client, error) {
	b, err := r.Resolve(name, o)
	if err != nil {
		return openai.Client{}, err
	}

	return b.Build()
}

// CreateClient is Create with only a credential and endpoint override.
func (r *Registry) CreateClient(name, credential, endpoint string) (openai.Client, error) {
	return r.Create(name, Overrides{Credential: credential, Endpoint: endpoint})
}

// CreateChain resolves the named variant and builds a langchaingo model from it.
func (r *Registry) CreateChain(name string, o Overrides) (llms.Model, error) {
	b, err := r.Resolve(name, o)
	if err != nil {
		return nil, err
	}

	cb, ok := b.(ChainBuilder)
	if !ok {
		return nil, configErrorf("client %s does not support langchain models", name)
	}

	return cb.Chain()
}
