package enhance

import (
	"context"
	"fmt"
	"strings"

	"github.com/resumeforge/backend/pkg/llm"
)

// Style selects the rewriting tone for a section.
type Style string

const (
	StyleProfessional Style = "professional"
	StyleConcise      Style = "concise"
	StyleImpactful    Style = "impactful"
)

// Result carries the rewritten text plus bookkeeping for the response.
type Result struct {
	Text      string
	CharsUsed int
	Excerpted bool // true if input was truncated to fit limits
}

// UseCase describes the section-text enhancement behavior. The language
// model behind it is an opaque service: text in, improved text out.
type UseCase interface {
	Enhance(ctx context.Context, section, text string, style Style) (Result, error)
}

type service struct {
	llm            llm.ChatModel
	maxPromptChars int
}

// NewService returns the default implementation.
func NewService(model llm.ChatModel) UseCase {
	return &service{
		llm:            model,
		maxPromptChars: 12_000,
	}
}

func (s *service) Enhance(ctx context.Context, section, text string, style Style) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, fmt.Errorf("empty section text")
	}
	if s.llm == nil {
		return Result{}, fmt.Errorf("enhancement model is not configured")
	}
	excerpted := false
	if len(text) > s.maxPromptChars {
		text = text[:s.maxPromptChars]
		excerpted = true
	}
	if style == "" {
		style = StyleProfessional
	}
	if section == "" {
		section = "summary"
	}

	system := "You are a resume writing assistant. Rewrite the text the user provides. Return only the rewritten text with no preamble, no markdown and no quotes. Never invent facts that are not in the original."
	user := fmt.Sprintf(
		"Rewrite the following resume %s section in a %s tone. Keep the same facts, fix grammar, prefer strong action verbs and keep it roughly the same length.\nText between markers:\n<<<\n%s\n>>>",
		section, style, text,
	)
	answer, err := s.llm.Ask(ctx, system, user)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Text:      strings.TrimSpace(answer),
		CharsUsed: len(text),
		Excerpted: excerpted,
	}, nil
}
