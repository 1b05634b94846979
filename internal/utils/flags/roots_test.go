package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestResolveRoots(t *testing.T) {
	testCases := []struct {
		name            string
		arguments       []string
		configuredRoots []string
		expectedRoots   []string
	}{
		{name: "DefaultsToWorkingDirectory", arguments: []string{}, configuredRoots: nil, expectedRoots: []string{"."}},
		{name: "ConfiguredRoots", arguments: []string{}, configuredRoots: []string{" abjad ", ""}, expectedRoots: []string{"abjad"}},
		{name: "FlagOverridesConfiguration", arguments: []string{"--root", "experimental", "--root", "trunk"}, configuredRoots: []string{"abjad"}, expectedRoots: []string{"experimental", "trunk"}},
		{name: "BlankFlagFallsBack", arguments: []string{"--root", "  "}, configuredRoots: []string{"abjad"}, expectedRoots: []string{"abjad"}},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			command := &cobra.Command{}
			BindRootFlag(command)
			require.NoError(t, command.ParseFlags(testCase.arguments))

			require.Equal(t, testCase.expectedRoots, ResolveRoots(command, testCase.configuredRoots))
		})
	}
}
