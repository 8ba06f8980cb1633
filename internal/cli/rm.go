package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirmap/internal/ui"
	"github.com/vvka-141/dirmap/pkg/dirmap"
)

type rmOptions struct {
	force bool
}

var rmFlags rmOptions

var rmCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Remove a file, or a directory and everything in it",
	Long: `Remove the entry addressed by key.

Removing a directory deletes all of its contents. On a terminal you are asked
to type the directory name first; elsewhere --force is required.`,
	Example: `  dirmap rm notes.txt
  dirmap rm build --force`,
	Args:              RequireKey,
	RunE:              runRm,
	ValidArgsFunction: completeKeys,
}

func init() {
	rootCmd.AddCommand(rmCmd)

	rmCmd.Flags().BoolVarP(&rmFlags.force, "force", "F", false, "Remove directories without asking for confirmation")
}

func runRm(cmd *cobra.Command, args []string) error {
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

	if isDirectory(target) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		approved, err := newApprover(cmd).RequestApproval(ctx, target)
		if err != nil {
			return err
		}
		if !approved {
			return fmt.Errorf("%w: %s", dirmap.ErrApprovalDenied, target)
		}
	}

	return s.dm.Delete(key)
}

// isDirectory reports whether path currently is a directory.
func isDirectory(path string) bool {
	_, err := dirmap.New(path)
	return err == nil
}

func newApprover(cmd *cobra.Command) ui.Approver {
	switch {
	case rmFlags.force:
		return ui.NewForcedApprover(cmd.ErrOrStderr())
	case ui.DetectMode() == ui.ModeInteractive:
		return ui.NewInteractiveApprover(cmd.InOrStdin(), cmd.ErrOrStderr())
	default:
		return ui.NewDenyingApprover(cmd.ErrOrStderr())
	}
}
