package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_ResetsFlagsBetweenRuns(t *testing.T) {
	var seen []string
	cmd := &cobra.Command{
		Use:  "greet",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _ := cmd.Flags().GetString("verb")
			seen = append(seen, v)
			return nil
		},
	}
	cmd.Flags().String("verb", "default", "")

	require.NoError(t, dispatch(cmd, []string{"--verb", "first"}))
	require.NoError(t, dispatch(cmd, nil))

	// A flag set on one invocation must not leak into the next.
	assert.Equal(t, []string{"first", "default"}, seen)
}

func TestDispatch_ValidatesArgs(t *testing.T) {
	ran := false
	cmd := &cobra.Command{
		Use:  "needsone",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			return nil
		},
	}

	assert.Error(t, dispatch(cmd, nil))
	assert.False(t, ran)

	assert.NoError(t, dispatch(cmd, []string{"x"}))
	assert.True(t, ran)
}

func TestSiblingCommands_ExcludesSessionAndBuiltins(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	session := &cobra.Command{Use: "interactive"}
	listCmd := &cobra.Command{Use: "listEvents", Run: func(*cobra.Command, []string) {}}
	helpCmd := &cobra.Command{Use: "help"}
	root.AddCommand(session, listCmd, helpCmd)

	got := siblingCommands(session)
	assert.Contains(t, got, "listEvents")
	assert.NotContains(t, got, "interactive")
	assert.NotContains(t, got, "help")
}
