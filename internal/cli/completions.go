package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// completeKeys provides shell completion for entry names of the directory.
func completeKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := openSession(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	keys, err := s.dm.Keys(s.settings.ShowHidden || strings.HasPrefix(toComplete, "."))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var matches []string
	for _, k := range keys {
		if strings.HasPrefix(k, toComplete) {
			matches = append(matches, k)
		}
	}

	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}
