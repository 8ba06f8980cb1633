package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirmap/pkg/dirmap"
)

var hasCmd = &cobra.Command{
	Use:   "has <key>",
	Short: "Report whether a key exists",
	Long: `Print true or false depending on whether key addresses an existing entry.

The command fails with exit code 13 when the entry is absent (14 for a
position past the end), so it can be used directly in shell conditions.`,
	Example: `  dirmap has .git && echo "repository"`,
	Args:              RequireKey,
	RunE:              runHas,
	ValidArgsFunction: completeKeys,
}

func init() {
	rootCmd.AddCommand(hasCmd)
}

func runHas(cmd *cobra.Command, args []string) error {
	args = restoreArgs(args)
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	key, err := dirmap.ParseKey(args[0])
	if err != nil {
		return err
	}

	found := s.dm.Contains(key)
	fmt.Fprintln(cmd.OutOrStdout(), found)
	if found {
		return nil
	}

	target, err := s.dm.ResolveSubpath(key)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", dirmap.ErrPathNotFound, target)
}
