package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/marquee/pkg/domain"
)

// User-facing messages for the two empty outcomes. Wording is part of the
// console contract; scripts and tests key on these strings.
const (
	MsgNoMatch   = "I don't understand that query. Try rephrasing it."
	MsgNoResults = "No results found."
)

// Render turns a resolved response into presentation actions. limit caps how
// many answers are shown; <= 0 shows everything. The header count reflects
// what is shown, not what the handler found.
func (e *Engine) Render(ctx context.Context, resp *domain.Response, limit int) ([]domain.ActionRequest, error) {
	if resp == nil {
		return nil, errors.New("cannot render nil response")
	}

	switch resp.Kind {
	case domain.KindEmpty:
		// Blank input: the caller just prompts again.
		return nil, nil
	case domain.KindNoMatch:
		return []domain.ActionRequest{{Type: domain.ActionSystemMessage, Payload: MsgNoMatch}}, nil
	case domain.KindNoAnswer:
		return []domain.ActionRequest{{Type: domain.ActionSystemMessage, Payload: MsgNoResults}}, nil
	case domain.KindAnswers:
		shown := resp.Answers
		if limit > 0 && len(shown) > limit {
			shown = shown[:limit]
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Found %d result(s):\n", len(shown))
		for i, answer := range shown {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, answer)
		}

		return []domain.ActionRequest{{
			Type:    domain.ActionRenderContent,
			Payload: strings.TrimRight(b.String(), "\n"),
		}}, nil
	default:
		return nil, fmt.Errorf("unknown response kind: %q", resp.Kind)
	}
}
