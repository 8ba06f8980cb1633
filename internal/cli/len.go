package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lenCmd = &cobra.Command{
	Use:   "len",
	Short: "Print the number of entries, hidden entries included",
	Args:  cobra.NoArgs,
	RunE:  runLen,
}

func init() {
	rootCmd.AddCommand(lenCmd)
}

func runLen(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	n, err := s.dm.Len()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}
