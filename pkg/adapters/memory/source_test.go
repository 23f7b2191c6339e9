package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/marquee/pkg/adapters/memory"
	"github.com/aretw0/marquee/pkg/domain"
)

func TestSourceCards(t *testing.T) {
	src := memory.NewSource(
		domain.Card{ID: "a", Template: "hello _", Handler: "greet"},
		domain.Card{ID: "b", Template: "bye", Handler: "bye"},
	)

	cards, err := src.Cards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "a", cards[0].ID)

	// The returned slice is a copy; mutating it must not leak back.
	cards[0].Template = "mutated"
	again, err := src.Cards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello _", again[0].Template)
}

func TestSourceSetCardsSignalsWatch(t *testing.T) {
	src := memory.NewSource()

	ch, err := src.Watch(context.Background())
	require.NoError(t, err)

	src.SetCards(domain.Card{ID: "a", Template: "hello _", Handler: "greet"})

	select {
	case <-ch:
	default:
		t.Fatal("expected a pending watch signal after SetCards")
	}

	cards, err := src.Cards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "a", cards[0].ID)
}

func TestSourceSignalsCoalesce(t *testing.T) {
	src := memory.NewSource()

	ch, err := src.Watch(context.Background())
	require.NoError(t, err)

	// Two rapid changes collapse into one pending signal.
	src.SetCards(domain.Card{ID: "a", Template: "hello _", Handler: "greet"})
	src.SetCards()

	<-ch
	select {
	case <-ch:
		t.Fatal("expected signals to coalesce into one")
	default:
	}
}
