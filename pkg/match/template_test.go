package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	tpl := ParseTemplate("who directed %")
	require.Len(t, tpl, 3)

	assert.Equal(t, Literal("who"), tpl[0])
	assert.Equal(t, Literal("directed"), tpl[1])
	assert.Equal(t, Multi(), tpl[2])
}

func TestParseTemplateWildcardMarkers(t *testing.T) {
	tpl := ParseTemplate("what movies were made between _ and _")
	assert.Equal(t, 2, tpl.Wildcards())

	tpl = ParseTemplate("bye")
	assert.Equal(t, 0, tpl.Wildcards())

	tpl = ParseTemplate("did _ direct %")
	assert.Equal(t, 2, tpl.Wildcards())
}

func TestParseTemplateEmpty(t *testing.T) {
	assert.Nil(t, ParseTemplate(""))
	assert.Nil(t, ParseTemplate("   "))
}

func TestTemplateStringRoundTrip(t *testing.T) {
	for _, text := range []string{
		"who directed %",
		"what movies were made between _ and _",
		"bye",
		"when was % made",
	} {
		assert.Equal(t, text, ParseTemplate(text).String())
	}
}

func TestParseTemplateCollapsesWhitespace(t *testing.T) {
	tpl := ParseTemplate("  who   directed   % ")
	assert.Equal(t, "who directed %", tpl.String())
}
