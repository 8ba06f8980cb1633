package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/dirmap/pkg/dirmap"
)

var getCmd = &cobra.Command{
	Use:   "get <index...>",
	Short: "Print the content of files or the listing of directories",
	Long: `Print what an index resolves to.

A file prints its content, a directory prints its entry names. Several keys
or a range print each result under a numbered header; if any key is missing
nothing is printed and the command fails.`,
	Example: `  dirmap get README.md
  dirmap get 0:2
  dirmap get LICENSE README.md`,
	Args:              RequireIndex,
	RunE:              runGet,
	ValidArgsFunction: completeKeys,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	args = restoreArgs(args)
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	idx, err := dirmap.ParseIndex(args)
	if err != nil {
		return err
	}
	s.logger.Verbose("resolving %v in %s", idx, s.dm)

	v, err := s.dm.Get(idx)
	if err != nil {
		return err
	}
	return newPrinter(cmd.OutOrStdout()).value(v, s.settings.ShowHidden)
}
