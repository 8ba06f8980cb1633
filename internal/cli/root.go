package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dirmap",
	Short: "Use a directory as a keyed container",
	Long: `dirmap reads, writes and removes the entries of a directory by key.

A key is a name, a position in the sorted listing, or a range:
  README.md      the entry named README.md
  0, -1          first and last entry (hidden entries included)
  1:4, -2:, ::2  positions 1-3, the last two, every other entry
  LICENSE:z      from LICENSE up to (not including) z
  @42            the entry literally named 42
Negative positions such as -1 or -2: are keys, not flags; "--" also ends
flag parsing (dirmap get -- -1).
Several keys may be given at once; they are read in order and the first
missing one fails the whole command.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Directory missing or not a directory
  12 - Recursive removal not approved
  13 - Key resolved to nothing
  14 - Invalid key or position out of range`,
	SilenceUsage: true,
}

// rootOptions holds the persistent flag values shared by every command.
type rootOptions struct {
	dir        string
	verbose    bool
	configPath string
	envFile    string
}

var rootFlags rootOptions

// Execute runs the root command
func Execute() error {
	return executeArgs(os.Args[1:])
}

func executeArgs(args []string) error {
	rootCmd.SetArgs(protectNegativeKeys(rootCmd, args))
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.dir, "dir", "C", "", "Directory to operate on (default: $DIRMAP_ROOT, config root, or the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "", "Path to a dirmap.yaml file (default: ./dirmap.yaml when present)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.envFile, "env-file", "", "Env file to load before reading DIRMAP_* variables (default: ./.env when present)")

	_ = rootCmd.RegisterFlagCompletionFunc("dir", completeDirectories)
}
