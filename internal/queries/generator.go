// Package queries turns résumé text into job-board search queries via the
// language model, falling back to a fixed list when generation fails.
package queries

import (
	"context"
	"log"
	"strconv"

	"github.com/surya/job-search-agent/internal/llm"
	"github.com/surya/job-search-agent/internal/prompts"
	"github.com/surya/job-search-agent/internal/resume"
	"github.com/surya/job-search-agent/internal/types"
)

const (
	promptFile = "queries.json"
	promptKey  = "generate_queries"

	// QueryCount is how many queries the model is asked for.
	QueryCount = 5

	// ResumeContextLimit caps the résumé text included in the prompt.
	ResumeContextLimit = 3000
)

// FallbackQueries is the fixed list used whenever generation fails. Order is
// part of the contract: downstream scraping issues queries in this order.
var FallbackQueries = []types.SearchQuery{
	{Role: "Generative AI Engineer", Location: "India"},
	{Role: "Data Scientist", Location: "India"},
	{Role: "Python Developer", Location: "India"},
	{Role: "Computer Vision Engineer", Location: "India"},
	{Role: "Software Engineer Fresher", Location: "India"},
}

// Fallback returns a fresh copy of the fallback list.
func Fallback() []types.SearchQuery {
	out := make([]types.SearchQuery, len(FallbackQueries))
	copy(out, FallbackQueries)
	return out
}

// TextSource produces the résumé text that seeds the prompt.
type TextSource interface {
	Text(ctx context.Context, path string) (string, error)
}

// Options fixes the prompt profile for a Generator.
type Options struct {
	ResumePath string
	Skills     string
	Location   string
}

// Generator produces search queries from a résumé via the language model.
type Generator struct {
	client llm.Client
	source TextSource
	opts   Options
}

// New builds a Generator. The client and source are required; Options fields
// flow into the prompt verbatim.
func New(client llm.Client, source TextSource, opts Options) *Generator {
	return &Generator{
		client: client,
		source: source,
		opts:   opts,
	}
}

// Generate returns the model-derived queries, or the fallback list when any
// step of generation fails. It never returns an error: a generation failure
// is logged and answered with Fallback().
func (g *Generator) Generate(ctx context.Context) []types.SearchQuery {
	generated, err := g.generate(ctx)
	if err != nil {
		log.Printf("[QUERIES] generation failed, using fallback list: %v", err)
		return Fallback()
	}

	log.Printf("[QUERIES] model produced %d queries", len(generated))
	return generated
}

func (g *Generator) generate(ctx context.Context) ([]types.SearchQuery, error) {
	if g.client == nil {
		return nil, &GenerationError{Message: "language model client unavailable"}
	}

	text, err := g.source.Text(ctx, g.opts.ResumePath)
	if err != nil {
		return nil, &GenerationError{Message: "resume text unavailable", Cause: err}
	}

	template, err := prompts.Get(promptFile, promptKey)
	if err != nil {
		return nil, &GenerationError{Message: "prompt template unavailable", Cause: err}
	}

	prompt := prompts.Format(template, map[string]string{
		"Count":    strconv.Itoa(QueryCount),
		"Skills":   g.opts.Skills,
		"Location": g.opts.Location,
		"Resume":   resume.Truncate(text, ResumeContextLimit),
	})

	reply, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, &GenerationError{Message: "model call failed", Cause: err}
	}

	parsed, err := ParseQueryList(reply)
	if err != nil {
		return nil, &GenerationError{Message: "model reply rejected", Cause: err}
	}

	return parsed, nil
}
