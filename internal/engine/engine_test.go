package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/marquee/internal/engine"
	"github.com/aretw0/marquee/pkg/domain"
	"github.com/aretw0/marquee/pkg/registry"
)

func fixed(answers ...string) registry.Handler {
	return func(ctx context.Context, bindings []string) ([]string, error) {
		return answers, nil
	}
}

func echo() registry.Handler {
	return func(ctx context.Context, bindings []string) ([]string, error) {
		return bindings, nil
	}
}

func failing(err error) registry.Handler {
	return func(ctx context.Context, bindings []string) ([]string, error) {
		return nil, err
	}
}

func mounted(t *testing.T, reg *registry.Registry, pack, builtins []domain.Card, opts ...engine.Option) *engine.Engine {
	t.Helper()
	e := engine.New(reg, opts...)
	require.NoError(t, e.Mount(pack, builtins))
	return e
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"who", "directed", "inception"}, engine.Tokenize("Who Directed Inception?"))
	assert.Equal(t, []string{"when", "was", "x", "made"}, engine.Tokenize("  when   was x made "))
	assert.Empty(t, engine.Tokenize("???"))
	assert.Empty(t, engine.Tokenize(""))
}

func TestResolveEmptyInput(t *testing.T) {
	started := 0
	reg := registry.New()
	e := mounted(t, reg, nil, nil, engine.WithLifecycleHooks(domain.LifecycleHooks{
		OnQueryStart: func(ctx context.Context, ev *domain.QueryEvent) { started++ },
	}))

	resp, err := e.Resolve(context.Background(), "   ?  ")
	require.NoError(t, err)
	assert.Equal(t, domain.KindEmpty, resp.Kind)
	assert.Zero(t, started, "blank lines never reach the table")
}

func TestResolveNoMatch(t *testing.T) {
	reg := registry.New()
	reg.Register("greet", fixed("hello"))
	e := mounted(t, reg, nil, []domain.Card{{ID: "b/greet", Template: "say hello", Handler: "greet"}})

	resp, err := e.Resolve(context.Background(), "total nonsense")
	require.NoError(t, err)
	assert.Equal(t, domain.KindNoMatch, resp.Kind)
	assert.Empty(t, resp.Pattern)
}

func TestResolveBindingsReachHandler(t *testing.T) {
	reg := registry.New()
	reg.Register("echo", echo())
	e := mounted(t, reg, nil, []domain.Card{
		{ID: "b/echo", Template: "who directed %", Handler: "echo"},
	})

	resp, err := e.Resolve(context.Background(), "Who directed The Dark Knight?")
	require.NoError(t, err)
	assert.Equal(t, domain.KindAnswers, resp.Kind)
	assert.Equal(t, []string{"the dark knight"}, resp.Answers)
	assert.Equal(t, "who directed %", resp.Pattern)
	assert.Equal(t, "echo", resp.Handler)
}

func TestDispatchOrderIsSignificant(t *testing.T) {
	reg := registry.New()
	reg.Register("narrow", fixed("narrow"))
	reg.Register("broad", fixed("broad"))

	// Both templates match "what movies were made in 1999"; only the first
	// declared entry may ever fire.
	e := mounted(t, reg, nil, []domain.Card{
		{ID: "b/narrow", Template: "what movies were made in _", Handler: "narrow"},
		{ID: "b/broad", Template: "what movies were made in %", Handler: "broad"},
	})

	resp, err := e.Resolve(context.Background(), "what movies were made in 1999")
	require.NoError(t, err)
	assert.Equal(t, []string{"narrow"}, resp.Answers)
}

func TestFirstMatchIsFinal(t *testing.T) {
	reg := registry.New()
	reg.Register("empty", fixed())
	reg.Register("full", fixed("later answer"))

	e := mounted(t, reg, nil, []domain.Card{
		{ID: "b/empty", Template: "who directed %", Handler: "empty"},
		{ID: "b/full", Template: "who directed %", Handler: "full"},
	})

	resp, err := e.Resolve(context.Background(), "who directed inception")
	require.NoError(t, err)
	assert.Equal(t, domain.KindNoAnswer, resp.Kind,
		"an empty result must not fall through to a later matching entry")
}

func TestPackShadowsBuiltin(t *testing.T) {
	reg := registry.New()
	reg.Register("builtin_h", fixed("builtin"))
	reg.Register("pack_h", fixed("pack"))

	pack := []domain.Card{{ID: "pack/override", Template: "who directed %", Handler: "pack_h"}}
	builtins := []domain.Card{{ID: "b/director", Template: "who directed %", Handler: "builtin_h"}}
	e := mounted(t, reg, pack, builtins)

	resp, err := e.Resolve(context.Background(), "who directed inception")
	require.NoError(t, err)
	assert.Equal(t, []string{"pack"}, resp.Answers)
}

func TestHandlerErrorDowngradesToNoAnswer(t *testing.T) {
	reg := registry.New()
	reg.Register("boom", failing(errors.New("api exploded")))
	e := mounted(t, reg, nil, []domain.Card{{ID: "b/boom", Template: "who directed %", Handler: "boom"}})

	resp, err := e.Resolve(context.Background(), "who directed inception")
	require.NoError(t, err, "ordinary handler failures stay inside the query")
	assert.Equal(t, domain.KindNoAnswer, resp.Kind)
}

func TestSessionEndPassesThrough(t *testing.T) {
	reg := registry.New()
	reg.Register("bye", failing(domain.ErrSessionEnd))
	e := mounted(t, reg, nil, []domain.Card{{ID: "b/bye", Template: "bye", Handler: "bye"}})

	_, err := e.Resolve(context.Background(), "bye")
	require.ErrorIs(t, err, domain.ErrSessionEnd)
}

func TestContextCancellationPassesThrough(t *testing.T) {
	reg := registry.New()
	reg.Register("slow", func(ctx context.Context, bindings []string) ([]string, error) {
		return nil, context.Canceled
	})
	e := mounted(t, reg, nil, []domain.Card{{ID: "b/slow", Template: "who directed %", Handler: "slow"}})

	_, err := e.Resolve(context.Background(), "who directed inception")
	require.ErrorIs(t, err, context.Canceled)
}

func TestQueryHooksFire(t *testing.T) {
	var events []domain.EventType
	var final *domain.QueryEvent

	reg := registry.New()
	reg.Register("h", fixed("a", "b", "c"))
	e := mounted(t, reg, nil, []domain.Card{{ID: "b/h", Template: "who directed %", Handler: "h"}},
		engine.WithLifecycleHooks(domain.LifecycleHooks{
			OnQueryStart: func(ctx context.Context, ev *domain.QueryEvent) { events = append(events, ev.Type) },
			OnQueryEnd: func(ctx context.Context, ev *domain.QueryEvent) {
				events = append(events, ev.Type)
				final = ev
			},
		}))

	_, err := e.Resolve(context.Background(), "who directed inception")
	require.NoError(t, err)

	assert.Equal(t, []domain.EventType{domain.EventQueryStart, domain.EventQueryEnd}, events)
	require.NotNil(t, final)
	assert.Equal(t, domain.KindAnswers, final.Kind)
	assert.Equal(t, 3, final.Answers)
	assert.Equal(t, "who directed %", final.Pattern)
}

func TestMountRejectsUnknownHandler(t *testing.T) {
	e := engine.New(registry.New())
	err := e.Mount(nil, []domain.Card{{ID: "b/ghost", Template: "who directed %", Handler: "ghost"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b/ghost")
	assert.Contains(t, err.Error(), "handler not found")
}

func TestMountRejectsEmptyTemplate(t *testing.T) {
	reg := registry.New()
	reg.Register("h", fixed("x"))
	e := engine.New(reg)

	err := e.Mount(nil, []domain.Card{{ID: "b/blank", Template: "   ", Handler: "h"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty template")
}

func TestMountRejectsConsecutiveMultiWildcards(t *testing.T) {
	reg := registry.New()
	reg.Register("h", fixed("x"))
	e := engine.New(reg)

	err := e.Mount(nil, []domain.Card{{ID: "b/ambiguous", Template: "find % %", Handler: "h"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consecutive multi wildcards")
}

func TestMountSkipsDisabledCards(t *testing.T) {
	reg := registry.New()
	reg.Register("h", fixed("x"))
	e := mounted(t, reg, []domain.Card{
		{ID: "pack/off", Template: "who directed %", Handler: "h", Disabled: true},
	}, nil)

	resp, err := e.Resolve(context.Background(), "who directed inception")
	require.NoError(t, err)
	assert.Equal(t, domain.KindNoMatch, resp.Kind)
	assert.Empty(t, e.Patterns())
}

func TestPatternsReportsTableOrderAndSource(t *testing.T) {
	reg := registry.New()
	reg.Register("h", fixed("x"))

	pack := []domain.Card{{ID: "pack/custom", Template: "show me %", Handler: "h", Description: "custom"}}
	builtins := []domain.Card{{ID: "b/director", Template: "who directed %", Handler: "h"}}
	e := mounted(t, reg, pack, builtins)

	infos := e.Patterns()
	require.Len(t, infos, 2)
	assert.Equal(t, "show me %", infos[0].Template)
	assert.Equal(t, domain.SourcePack, infos[0].Source)
	assert.Equal(t, "custom", infos[0].Description)
	assert.Equal(t, "who directed %", infos[1].Template)
	assert.Equal(t, domain.SourceBuiltin, infos[1].Source)
}
