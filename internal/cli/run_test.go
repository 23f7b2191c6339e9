package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteWatchRequiresPatternsDir(t *testing.T) {
	err := Execute(RunOptions{Watch: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pattern directory")
}
