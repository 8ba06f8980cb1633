package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireIndex validates that at least one index argument is provided.
func RequireIndex(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <index>

Usage: %s

Example:
  %s README.md
  %s 0:3`, cmd.UseLine(), cmd.CommandPath(), cmd.CommandPath())
	}
	return nil
}

// RequireKey validates that exactly one key argument is provided.
func RequireKey(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <key>

Usage: %s

Example:
  %s notes.txt`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireKeyAndValue validates a key followed by an optional value.
func RequireKeyAndValue(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <key>

Usage: %s

Example:
  %s notes.txt "hello"
  echo hello | %s notes.txt`, cmd.UseLine(), cmd.CommandPath(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts between 1 and 2 arg(s), received %d", len(args))
	}
	return nil
}
