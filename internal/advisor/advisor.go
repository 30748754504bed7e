// Package advisor answers finance questions and derives forward-looking
// views (predictions, savings suggestions, spending patterns) from a user's
// history. Chat goes to a Generator when one is configured and degrades to
// deterministic keyword replies otherwise.
package advisor

import (
	"context"
	"strings"

	"financeai/internal/logger"
	"financeai/internal/models"
)

// Reply is an advisory response and the path that produced it.
type Reply struct {
	Text   string            `json:"response"`
	Source models.ChatSource `json:"source"`
}

// Advisor routes chat messages to a Generator with a fallback.
type Advisor struct {
	generator Generator
}

// New creates an Advisor. A nil generator means fallback-only replies.
func New(generator Generator) *Advisor {
	return &Advisor{generator: generator}
}

// HasGenerator reports whether a generative backend is configured.
func (a *Advisor) HasGenerator() bool {
	return a.generator != nil
}

// Respond answers msg. Generator errors and blank output are logged and
// replaced with the fallback reply; Respond itself never fails.
func (a *Advisor) Respond(ctx context.Context, msg string, uc UserContext) Reply {
	if a.generator == nil {
		return a.fallback(msg, uc)
	}

	text, err := a.generator.Generate(ctx, SystemPrompt, UserPrompt(msg, uc))
	if err != nil {
		logger.Get().Warnw("advisory generator failed, using fallback", "error", err)
		return a.fallback(msg, uc)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		logger.Get().Warn("advisory generator returned empty text, using fallback")
		return a.fallback(msg, uc)
	}

	return Reply{Text: text, Source: models.ChatSourceModel}
}

func (a *Advisor) fallback(msg string, uc UserContext) Reply {
	return Reply{Text: Fallback(msg, uc), Source: models.ChatSourceFallback}
}
