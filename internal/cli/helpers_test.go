package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// newTestCommand returns a standalone command carrying the given flags,
// parsed from args, so tests never share flag state through the globals.
func newTestCommand(t *testing.T, add func(*pflag.FlagSet), args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	add(cmd.Flags())
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}
