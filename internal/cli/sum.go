package cli

import (
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vvka-141/dirmap/internal/checksum"
	"github.com/vvka-141/dirmap/internal/files/scanner"
	"github.com/vvka-141/dirmap/internal/identity"
	"github.com/vvka-141/dirmap/pkg/dirmap"
)

type sumOptions struct {
	normalized bool
	ids        bool
	maxDepth   int
}

var sumFlags = sumOptions{maxDepth: -1}

var sumCmd = &cobra.Command{
	Use:   "sum <key>",
	Short: "Print the SHA-256 checksum of a file or of every file in a directory",
	Long: `Print the SHA-256 checksum of a file followed by its name.

When key addresses a directory, every regular file beneath it is printed,
depth-first in key order, as name/relative/path. Hidden entries follow the
show_hidden setting. --max-depth limits how many directories deep files are
reported; 0 keeps only the files directly inside.

With --normalized, line endings and trailing whitespace are normalized first,
so the same text saved on different platforms has the same checksum.
With --ids, the stable entry ID is printed between checksum and name.`,
	Example: `  dirmap sum LICENSE
  dirmap sum --normalized docs
  dirmap sum --ids --max-depth 1 0`,
	Args:              RequireKey,
	RunE:              runSum,
	ValidArgsFunction: completeKeys,
}

func init() {
	rootCmd.AddCommand(sumCmd)

	sumCmd.Flags().BoolVarP(&sumFlags.normalized, "normalized", "n", false, "Checksum normalized text instead of raw bytes")
	sumCmd.Flags().BoolVar(&sumFlags.ids, "ids", false, "Print the stable entry ID of each file")
	sumCmd.Flags().IntVar(&sumFlags.maxDepth, "max-depth", -1, "Only report files at most this many directories below key (-1: unlimited)")
}

func runSum(cmd *cobra.Command, args []string) error {
	args = restoreArgs(args)
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	key, err := dirmap.ParseKey(args[0])
	if err != nil {
		return err
	}
	target, err := s.dm.ResolveSubpath(key)
	if err != nil {
		return err
	}
	name := displayName(s.dm, target)

	calc := checksum.New()
	out := cmd.OutOrStdout()

	if !isDirectory(target) {
		data, err := s.dm.ReadBytes(key)
		if err != nil {
			return err
		}
		digest := calc.CalculateRaw(data)
		if sumFlags.normalized {
			digest = calc.CalculateNormalized(data)
		}
		printSum(out, digest, identity.ForPath(target), name)
		return nil
	}

	v, err := s.dm.Get(key)
	if err != nil {
		return err
	}
	sub, ok := v.(*dirmap.DirectoryMap)
	if !ok {
		return fmt.Errorf("%w: %s", dirmap.ErrNotADirectory, target)
	}
	result, err := scanner.NewScanner(calc, s.settings.ShowHidden).ScanDirectory(sub)
	if err != nil {
		return err
	}
	s.logger.Verbose("scanned %d files under %s", len(result.Files), target)

	for _, f := range result.Files {
		if sumFlags.maxDepth >= 0 && f.Depth > sumFlags.maxDepth {
			continue
		}
		digest := f.ChecksumRaw
		if sumFlags.normalized {
			digest = f.Checksum
		}
		printSum(out, digest, f.ID, path.Join(name, f.Key()))
	}
	return nil
}

func printSum(w io.Writer, digest string, id uuid.UUID, name string) {
	if sumFlags.ids {
		fmt.Fprintf(w, "%s  %s  %s\n", digest, id, name)
		return
	}
	fmt.Fprintf(w, "%s  %s\n", digest, name)
}

// displayName is target relative to the root of d, slash-separated. Targets
// outside the root, reached through absolute or "~" names, stay absolute.
func displayName(d *dirmap.DirectoryMap, target string) string {
	rel, err := filepath.Rel(d.Path(), target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}
