package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// negativeKeyMarker is prepended to arguments such as "-1" or "-2:" so the
// flag parser keeps them as positional keys. A real argv cannot contain NUL,
// so the marker never collides with user input.
const negativeKeyMarker = "\x00"

// negativeKeyPattern matches negative positions and ranges starting with one.
// No flag has a digit shorthand, so these are never flags.
var negativeKeyPattern = regexp.MustCompile(`^-[0-9]`)

// protectNegativeKeys marks negative keys in args, leaving alone the values
// of flags that take one (as in "--max-depth -1") and everything after "--".
func protectNegativeKeys(root *cobra.Command, args []string) []string {
	valueFlags := valueFlagTokens(root)

	out := make([]string, len(args))
	copy(out, args)
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if !negativeKeyPattern.MatchString(arg) {
			continue
		}
		if i > 0 && valueFlags[args[i-1]] {
			continue
		}
		out[i] = negativeKeyMarker + arg
	}
	return out
}

// restoreArgs removes the marker added by protectNegativeKeys.
func restoreArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = strings.TrimPrefix(arg, negativeKeyMarker)
	}
	return out
}

// valueFlagTokens collects "--name" and "-x" for every non-boolean flag in
// the command tree.
func valueFlagTokens(root *cobra.Command) map[string]bool {
	tokens := make(map[string]bool)
	add := func(f *pflag.Flag) {
		if f.Value.Type() == "bool" {
			return
		}
		tokens["--"+f.Name] = true
		if f.Shorthand != "" {
			tokens["-"+f.Shorthand] = true
		}
	}

	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		c.Flags().VisitAll(add)
		c.PersistentFlags().VisitAll(add)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(root)
	return tokens
}
