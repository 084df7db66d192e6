package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
)

func TestMenu(t *testing.T) {
	got := Menu("Please select a language from the following options", []string{"cpp", "golang"})
	assert.Contains(t, got, "0: cpp\n1: golang\n")
	assert.Contains(t, got, `Input "0" for cpp`)
}

func TestParseChoice(t *testing.T) {
	idx, err := ParseChoice(" 1\n", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	for _, in := range []string{"", "two", "-1", "2"} {
		_, err := ParseChoice(in, 2)
		assert.True(t, lcerrors.Is(err, lcerrors.InvalidChoice), "input %q", in)
	}
}

func TestFilenameOrDefault(t *testing.T) {
	assert.Equal(t, "main.rs", FilenameOrDefault("  ", "main.rs"))
	assert.Equal(t, "sol.rs", FilenameOrDefault("sol.rs\n", "main.rs"))
}
