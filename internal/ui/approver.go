// Package ui holds the console interactions of the dirmap command.
package ui

import "context"

// Approver confirms destructive operations, such as removing a directory
// together with everything below it.
//
// Implementations:
//   - ForcedApprover: approves without asking (--force)
//   - InteractiveApprover: asks the user to type the entry name
//   - DenyingApprover: refuses, for non-interactive runs without --force
type Approver interface {
	// RequestApproval asks whether target may be removed recursively.
	// It returns false without error when the user declines.
	RequestApproval(ctx context.Context, target string) (bool, error)
}
