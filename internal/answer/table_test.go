package answer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/marquee/internal/answer"
	"github.com/aretw0/marquee/internal/testutils"
	"github.com/aretw0/marquee/pkg/registry"
)

func TestBuiltinTableOrder(t *testing.T) {
	var templates []string
	for _, card := range answer.Builtins() {
		templates = append(templates, card.Template)
	}

	assert.Equal(t, []string{
		"what movies were made in _",
		"what movies were made between _ and _",
		"what movies were made before _",
		"what movies were made after _",
		"who directed %",
		"who was the director of %",
		"what movies were directed by %",
		"who acted in %",
		"when was % made",
		"in what movies did % appear",
		"bye",
	}, templates)
}

func TestEveryBuiltinHandlerIsRegistered(t *testing.T) {
	svc := answer.NewService((&testutils.FakeTMDB{}).Client(t))
	reg := registry.New()
	svc.Register(reg)

	for _, card := range answer.Builtins() {
		_, err := reg.Resolve(card.Handler)
		require.NoError(t, err, "builtin %s references handler %s", card.ID, card.Handler)
	}
}
