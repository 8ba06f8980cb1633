package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirmap/internal/identity"
	"github.com/vvka-141/dirmap/pkg/dirmap"
)

type lsOptions struct {
	hidden   bool
	noHidden bool
	files    bool
	dirs     bool
	ids      bool
	match    string
}

var lsFlags lsOptions

var lsCmd = &cobra.Command{
	Use:   "ls [index...]",
	Short: "List the entries of the directory or of a subdirectory",
	Long: `List entry names in sorted order, one per line.

With an index, list the subdirectory it resolves to instead.`,
	Example: `  dirmap ls
  dirmap ls --no-hidden --files
  dirmap ls .git --match 'ref*'
  dirmap ls 0 --ids`,
	Args:              cobra.ArbitraryArgs,
	RunE:              runLs,
	ValidArgsFunction: completeKeys,
}

func init() {
	rootCmd.AddCommand(lsCmd)

	lsCmd.Flags().BoolVarP(&lsFlags.hidden, "hidden", "a", false, "Include entries starting with '.'")
	lsCmd.Flags().BoolVar(&lsFlags.noHidden, "no-hidden", false, "Exclude entries starting with '.'")
	lsCmd.Flags().BoolVarP(&lsFlags.files, "files", "f", false, "Only list regular files")
	lsCmd.Flags().BoolVarP(&lsFlags.dirs, "dirs", "d", false, "Only list directories")
	lsCmd.Flags().BoolVar(&lsFlags.ids, "ids", false, "Prefix each name with its stable entry ID")
	lsCmd.Flags().StringVarP(&lsFlags.match, "match", "m", "", "Only list names matching a glob pattern (supports {a,b} and **)")

	lsCmd.MarkFlagsMutuallyExclusive("hidden", "no-hidden")
	lsCmd.MarkFlagsMutuallyExclusive("files", "dirs")
}

func runLs(cmd *cobra.Command, args []string) error {
	args = restoreArgs(args)
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	target := s.dm
	if len(args) > 0 {
		target, err = resolveDirectory(s.dm, args)
		if err != nil {
			return err
		}
	}

	showHidden := s.settings.ShowHidden
	switch {
	case lsFlags.hidden:
		showHidden = true
	case lsFlags.noHidden:
		showHidden = false
	}

	names, err := listNames(target, showHidden)
	if err != nil {
		return err
	}
	if lsFlags.match != "" {
		matched, err := target.Match(lsFlags.match, showHidden)
		if err != nil {
			return err
		}
		names = intersect(names, matched)
	}
	s.logger.Verbose("listing %d entries of %s", len(names), target)

	p := newPrinter(cmd.OutOrStdout())
	if lsFlags.ids {
		for _, name := range names {
			fmt.Fprintf(p.w, "%s  %s\n", identity.ForPath(target.SubpathOf(name)), name)
		}
		return nil
	}

	dirs, err := p.dirSet(target, showHidden)
	if err != nil {
		return err
	}
	p.names(names, dirs)
	return nil
}

func listNames(d *dirmap.DirectoryMap, showHidden bool) ([]string, error) {
	switch {
	case lsFlags.files:
		return d.Files(showHidden)
	case lsFlags.dirs:
		return d.Dirs(showHidden)
	default:
		return d.Keys(showHidden)
	}
}

// resolveDirectory reads args as an index that must name a subdirectory.
func resolveDirectory(d *dirmap.DirectoryMap, args []string) (*dirmap.DirectoryMap, error) {
	idx, err := dirmap.ParseIndex(args)
	if err != nil {
		return nil, err
	}
	v, err := d.Get(idx)
	if err != nil {
		return nil, err
	}
	sub, ok := v.(*dirmap.DirectoryMap)
	if !ok {
		return nil, fmt.Errorf("%w: %s", dirmap.ErrNotADirectory, filepath.Join(d.Path(), strings.Join(args, " ")))
	}
	return sub, nil
}

// intersect keeps the elements of names that are also in keep, in names order.
func intersect(names, keep []string) []string {
	set := make(map[string]bool, len(keep))
	for _, k := range keep {
		set[k] = true
	}
	result := make([]string, 0, len(names))
	for _, name := range names {
		if set[name] {
			result = append(result, name)
		}
	}
	return result
}
