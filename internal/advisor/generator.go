package advisor

//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=advisor

import "context"

// Generator produces free-text advice from a system instruction and a user
// prompt. Implementations return an *errors.AppError wrapping
// ErrExternalService on any backend failure.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
