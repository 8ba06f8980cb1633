package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirmap/pkg/dirmap"
)

// stdinValue is the value argument that reads the content from stdin.
const stdinValue = "-"

var setCmd = &cobra.Command{
	Use:   "set <key> [value|-]",
	Short: "Create or overwrite a file",
	Long: `Write value to the file addressed by key, replacing any previous content.

Without a value, or with "-", the content is read from stdin and written
byte for byte. The parent directory must already exist.`,
	Example: `  dirmap set notes.txt "buy milk"
  curl -s https://example.com/logo.png | dirmap set logo.png`,
	Args:              RequireKeyAndValue,
	RunE:              runSet,
	ValidArgsFunction: completeKeys,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	args = restoreArgs(args)
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	key, err := dirmap.ParseKey(args[0])
	if err != nil {
		return err
	}

	var value any
	if len(args) == 2 && args[1] != stdinValue {
		value = args[1]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		value = data
	}

	return s.dm.Set(key, value)
}
