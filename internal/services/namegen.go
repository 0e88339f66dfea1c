package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/yalisommer/creature-creator/pkg/logger"
)

const nameInstruction = "You combine two creatures into one, creatively. Respond with only the name of the new creature, nothing else."

// nameTimeout bounds the upstream call so a hanging generation service
// cannot stall the combine request indefinitely.
const nameTimeout = 30 * time.Second

// NameGenerator produces a name for the creature two inputs combine
// into. Implementations must be total: a failed generation returns the
// mechanical fallback instead of an error, so callers never block on
// the upstream service being healthy.
type NameGenerator interface {
	Combine(ctx context.Context, name1, name2 string) string
}

// FallbackName is the deterministic name used whenever generation is
// unavailable. Callers cannot distinguish it from a generated one.
func FallbackName(name1, name2 string) string {
	return name1 + "-" + name2
}

// GeminiNameGenerator asks the Gemini API for combined creature names.
type GeminiNameGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiNameGenerator builds a generator from the configured API key.
func NewGeminiNameGenerator(ctx context.Context, apiKey, model string) (*GeminiNameGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiNameGenerator{client: client, model: model}, nil
}

func (g *GeminiNameGenerator) Combine(ctx context.Context, name1, name2 string) string {
	ctx, cancel := context.WithTimeout(ctx, nameTimeout)
	defer cancel()

	prompt := fmt.Sprintf("Combine these two creatures: %s and %s", name1, name2)

	start := time.Now()
	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(nameInstruction, genai.RoleUser),
		},
	)
	if err != nil {
		logger.Warn().Err(err).
			Str("name1", name1).
			Str("name2", name2).
			Msg("Name generation failed, using fallback")
		return FallbackName(name1, name2)
	}

	name := strings.TrimSpace(result.Text())
	if name == "" {
		logger.Warn().
			Str("name1", name1).
			Str("name2", name2).
			Msg("Name generation returned empty text, using fallback")
		return FallbackName(name1, name2)
	}

	logger.Info().
		Str("name", name).
		Dur("latency", time.Since(start)).
		Msg("Generated combination name")

	return name
}

// StaticNameGenerator always answers with the fallback. It backs the
// server when no API key is configured.
type StaticNameGenerator struct{}

func (StaticNameGenerator) Combine(_ context.Context, name1, name2 string) string {
	return FallbackName(name1, name2)
}
