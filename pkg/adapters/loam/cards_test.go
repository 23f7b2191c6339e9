package loam

import (
	"context"
	"testing"

	"github.com/aretw0/loam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/marquee/internal/testutils"
)

func testSource(t *testing.T, cards map[string]string) *Source {
	t.Helper()

	dir := testutils.SetupCardDir(t, cards)

	repo, err := loam.Init(dir,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	require.NoError(t, err, "Failed to init loam repo")

	return New(loam.NewTypedRepository[CardMetadata](repo))
}

func TestSourceCards(t *testing.T) {
	src := testSource(t, map[string]string{
		"20-slasher": `---
template: what slashers were made in _
handler: title_by_year
disabled: true
---
`,
		"10-director": `---
template: who was behind the camera on %
handler: director_by_title
description: Alternate phrasing for director lookups.
---
Matches looser phrasings than the builtin card.`,
	})

	cards, err := src.Cards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 2)

	// Sorted by ID, not by map iteration order.
	assert.Equal(t, "10-director", cards[0].ID)
	assert.Equal(t, "20-slasher", cards[1].ID)

	director := cards[0]
	assert.Equal(t, "who was behind the camera on %", director.Template)
	assert.Equal(t, "director_by_title", director.Handler)
	assert.Equal(t, "Alternate phrasing for director lookups.", director.Description)
	assert.False(t, director.Disabled)
	assert.Equal(t, "Matches looser phrasings than the builtin card.", director.Body)

	slasher := cards[1]
	assert.Equal(t, "title_by_year", slasher.Handler)
	assert.True(t, slasher.Disabled)
	assert.Empty(t, slasher.Body)
}

func TestSourceCardsMissingTemplate(t *testing.T) {
	src := testSource(t, map[string]string{
		"broken": `---
handler: title_by_year
---
`,
	})

	_, err := src.Cards(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing template")
	assert.Contains(t, err.Error(), "broken")
}

func TestSourceCardsMissingHandler(t *testing.T) {
	src := testSource(t, map[string]string{
		"broken": `---
template: who directed %
---
`,
	})

	_, err := src.Cards(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing handler")
}

func TestSourceCardsEmptyPack(t *testing.T) {
	src := testSource(t, map[string]string{})

	cards, err := src.Cards(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cards)
}
