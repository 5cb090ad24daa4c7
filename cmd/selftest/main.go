package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"swarm/pkg/llm"
	"swarm/pkg/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFlags(0)

	defaultVariants := lo.Map(models.Variants, func(v models.Variant, _ int) string {
		return string(v)
	})

	variants := flag.String("variants", strings.Join(defaultVariants, ","), "comma-separated variants to build")
	chain := flag.Bool("chain", false, "also build a langchain model for each variant")
	interactive := flag.Bool("interactive", false, "pick variants to build from a list")
	flag.Parse()

	e, err := models.LoadEnvironment()
	if err != nil {
		log.Fatalf("loading environment: %v", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(e.LogLevel)); err != nil {
		log.Fatalf("parsing log level: %v", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	registry := llm.NewRegistry(llm.WithLookup(e.Lookup()))

	if *interactive {
		p := tea.NewProgram(newPicker(registry, *chain), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	results, err := check(registry, splitVariants(*variants), *chain)
	for _, r := range results {
		if r.err != nil {
			color.Red("error creating %s client: %v", r.variant, r.err)
			continue
		}
		color.Green("%s client created successfully.", r.variant)
	}

	if err != nil {
		os.Exit(1)
	}
}

type result struct {
	variant string
	err     error
}

// check builds every variant concurrently and returns results in input order,
// along with the first failure.
func check(r *llm.Registry, variants []string, chain bool) ([]result, error) {
	results := make([]result, len(variants))

	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())

	for i, v := range variants {
		eg.Go(func() error {
			err := build(r, v, chain)
			results[i] = result{variant: v, err: err}
			if err != nil {
				return fmt.Errorf("creating %s client: %w", v, err)
			}
			return nil
		})
	}

	return results, eg.Wait()
}

func build(r *llm.Registry, variant string, chain bool) error {
	if _, err := r.Create(variant, llm.Overrides{}); err != nil {
		return err
	}

	if chain {
		if _, err := r.CreateChain(variant, llm.Overrides{}); err != nil {
			return fmt.Errorf("building langchain model: %w", err)
		}
	}

	return nil
}

func splitVariants(s string) []string {
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})

	return lo.Compact(parts)
}
